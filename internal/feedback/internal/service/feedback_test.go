// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ecodeclub/mockinterview/internal/feedback/internal/domain"
	feedbackmocks "github.com/ecodeclub/mockinterview/internal/feedback/mocks"
	"github.com/ecodeclub/mockinterview/internal/interview"
	interviewmocks "github.com/ecodeclub/mockinterview/internal/interview/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Generate(t *testing.T) {
	const uid = int64(7)
	intr := interview.Interview{
		ID:           3,
		Uid:          uid,
		RawQuestions: "1. 介绍一下自己\n2. 讲讲你的项目\n3. 有什么想问的",
	}
	review := domain.Review{
		Feedback:                  "整体不错",
		KnowledgeBasedRating:      "Good",
		SuggestionsForImprovement: []string{"回答更具体"},
		OverallScore:              8,
	}
	testCases := []struct {
		name        string
		interviewID int64
		uid         int64
		mock        func(ctrl *gomock.Controller) (interview.Service, Generator)
		wantFb      interview.Feedback
		wantErr     error
	}{
		{
			name:        "缺少的回答用占位文本",
			interviewID: 3,
			uid:         uid,
			mock: func(ctrl *gomock.Controller) (interview.Service, Generator) {
				svc := interviewmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().Detail(gomock.Any(), int64(3)).Return(intr, nil)
				svc.EXPECT().Responses(gomock.Any(), int64(3)).Return([]interview.Response{
					{ID: 1, QuestionIndex: 0, ResponseText: "  我是后端工程师 "},
					{ID: 2, QuestionIndex: 2, ResponseText: ""},
				}, nil)
				gen := feedbackmocks.NewMockGenerator(ctrl)
				gen.EXPECT().Review(gomock.Any(), []domain.QA{
					{Question: "介绍一下自己", Answer: "我是后端工程师"},
					{Question: "讲讲你的项目", Answer: domain.NoResponse},
					{Question: "有什么想问的", Answer: domain.NoResponse},
				}).Return(review, nil)
				svc.EXPECT().SaveFeedback(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fb interview.Feedback) (int64, error) {
						assert.True(t, fb.Ctime > 0)
						assert.Equal(t, int64(3), fb.InterviewID)
						assert.Equal(t, uid, fb.Uid)
						return 11, nil
					})
				return svc, gen
			},
			wantFb: interview.Feedback{
				ID:                        11,
				InterviewID:               3,
				Uid:                       uid,
				Feedback:                  "整体不错",
				KnowledgeBasedRating:      "Good",
				SuggestionsForImprovement: []string{"回答更具体"},
				OverallScore:              8,
				QuestionsAndResponses: []interview.QA{
					{Question: "介绍一下自己", Response: "我是后端工程师"},
					{Question: "讲讲你的项目", Response: domain.NoResponse},
					{Question: "有什么想问的", Response: domain.NoResponse},
				},
			},
		},
		{
			name:        "题目解析不出来时用回答里的题目",
			interviewID: 3,
			uid:         uid,
			mock: func(ctrl *gomock.Controller) (interview.Service, Generator) {
				svc := interviewmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().Detail(gomock.Any(), int64(3)).Return(interview.Interview{ID: 3, Uid: uid}, nil)
				svc.EXPECT().Responses(gomock.Any(), int64(3)).Return([]interview.Response{
					{ID: 1, QuestionIndex: 0, QuestionText: "Q1", ResponseText: "A1"},
				}, nil)
				gen := feedbackmocks.NewMockGenerator(ctrl)
				gen.EXPECT().Review(gomock.Any(), []domain.QA{{Question: "Q1", Answer: "A1"}}).Return(review, nil)
				svc.EXPECT().SaveFeedback(gomock.Any(), gomock.Any()).Return(int64(12), nil)
				return svc, gen
			},
			wantFb: interview.Feedback{
				ID:                        12,
				InterviewID:               3,
				Uid:                       uid,
				Feedback:                  "整体不错",
				KnowledgeBasedRating:      "Good",
				SuggestionsForImprovement: []string{"回答更具体"},
				OverallScore:              8,
				QuestionsAndResponses:     []interview.QA{{Question: "Q1", Response: "A1"}},
			},
		},
		{
			name: "缺少参数",
			uid:  uid,
			mock: func(ctrl *gomock.Controller) (interview.Service, Generator) {
				return interviewmocks.NewMockInterviewService(ctrl), feedbackmocks.NewMockGenerator(ctrl)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:        "面试不存在",
			interviewID: 3,
			uid:         uid,
			mock: func(ctrl *gomock.Controller) (interview.Service, Generator) {
				svc := interviewmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().Detail(gomock.Any(), int64(3)).Return(interview.Interview{}, interview.ErrInterviewNotFound)
				return svc, feedbackmocks.NewMockGenerator(ctrl)
			},
			wantErr: ErrInterviewNotFound,
		},
		{
			name:        "别人的面试",
			interviewID: 3,
			uid:         uid + 1,
			mock: func(ctrl *gomock.Controller) (interview.Service, Generator) {
				svc := interviewmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().Detail(gomock.Any(), int64(3)).Return(intr, nil)
				return svc, feedbackmocks.NewMockGenerator(ctrl)
			},
			wantErr: ErrInterviewNotFound,
		},
		{
			name:        "评估失败不保存",
			interviewID: 3,
			uid:         uid,
			mock: func(ctrl *gomock.Controller) (interview.Service, Generator) {
				svc := interviewmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().Detail(gomock.Any(), int64(3)).Return(intr, nil)
				svc.EXPECT().Responses(gomock.Any(), int64(3)).Return(nil, nil)
				gen := feedbackmocks.NewMockGenerator(ctrl)
				gen.EXPECT().Review(gomock.Any(), gomock.Any()).Return(domain.Review{}, ErrNoReview)
				return svc, gen
			},
			wantErr: ErrNoReview,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewService(tc.mock(ctrl))
			fb, err := svc.Generate(context.Background(), tc.interviewID, tc.uid)
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr))
				return
			}
			require.NoError(t, err)
			fb.Ctime = 0
			assert.Equal(t, tc.wantFb, fb)
		})
	}
}

func TestService_GenerateOnce(t *testing.T) {
	const uid = int64(7)
	existing := interview.Feedback{ID: 5, InterviewID: 3, Uid: uid, Feedback: "已经评估过"}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (interview.Service, Generator)
		wantFb  interview.Feedback
		wantErr error
	}{
		{
			name: "已有评估不再生成",
			mock: func(ctrl *gomock.Controller) (interview.Service, Generator) {
				svc := interviewmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().Feedback(gomock.Any(), int64(3)).Return(existing, nil)
				svc.EXPECT().SaveFeedback(gomock.Any(), gomock.Any()).Times(0)
				gen := feedbackmocks.NewMockGenerator(ctrl)
				gen.EXPECT().Review(gomock.Any(), gomock.Any()).Times(0)
				return svc, gen
			},
			wantFb: existing,
		},
		{
			name: "没有评估时生成",
			mock: func(ctrl *gomock.Controller) (interview.Service, Generator) {
				svc := interviewmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().Feedback(gomock.Any(), int64(3)).Return(interview.Feedback{}, interview.ErrFeedbackNotFound)
				svc.EXPECT().Detail(gomock.Any(), int64(3)).Return(interview.Interview{ID: 3, Uid: uid, RawQuestions: "1. Q1"}, nil)
				svc.EXPECT().Responses(gomock.Any(), int64(3)).Return([]interview.Response{
					{ID: 1, QuestionIndex: 0, ResponseText: "A1"},
				}, nil)
				gen := feedbackmocks.NewMockGenerator(ctrl)
				gen.EXPECT().Review(gomock.Any(), []domain.QA{{Question: "Q1", Answer: "A1"}}).
					Return(domain.Review{Feedback: "不错", OverallScore: 7}, nil)
				svc.EXPECT().SaveFeedback(gomock.Any(), gomock.Any()).Return(int64(6), nil)
				return svc, gen
			},
			wantFb: interview.Feedback{
				ID:                    6,
				InterviewID:           3,
				Uid:                   uid,
				Feedback:              "不错",
				OverallScore:          7,
				QuestionsAndResponses: []interview.QA{{Question: "Q1", Response: "A1"}},
			},
		},
		{
			name: "查询评估失败",
			mock: func(ctrl *gomock.Controller) (interview.Service, Generator) {
				svc := interviewmocks.NewMockInterviewService(ctrl)
				svc.EXPECT().Feedback(gomock.Any(), int64(3)).Return(interview.Feedback{}, errors.New("db error"))
				return svc, feedbackmocks.NewMockGenerator(ctrl)
			},
			wantErr: errors.New("db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewService(tc.mock(ctrl))
			fb, err := svc.GenerateOnce(context.Background(), 3, uid)
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			fb.Ctime = 0
			assert.Equal(t, tc.wantFb, fb)
		})
	}
}
