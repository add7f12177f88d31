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

package web

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/errs"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/service"
	interviewmocks "github.com/ecodeclub/mockinterview/internal/interview/mocks"
	"github.com/ecodeclub/mockinterview/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const uid = int64(123)

type handlerMocks struct {
	svc      *interviewmocks.MockInterviewService
	genSvc   *interviewmocks.MockGenerationService
	uploader *interviewmocks.MockFileUploader
}

func newServer(t *testing.T, mock func(m handlerMocks)) *gin.Engine {
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		svc:      interviewmocks.NewMockInterviewService(ctrl),
		genSvc:   interviewmocks.NewMockGenerationService(ctrl),
		uploader: interviewmocks.NewMockFileUploader(ctrl),
	}
	mock(m)
	gin.SetMode(gin.ReleaseMode)
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{Uid: uid}))
	})
	NewHandler(m.svc, m.genSvc, m.uploader).PrivateRoutes(server)
	return server
}

func multipartBody(t *testing.T, fields map[string]string, files map[string][]byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	for k, v := range files {
		part, err := writer.CreateFormFile(k, k+".bin")
		require.NoError(t, err)
		_, err = part.Write(v)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestHandler_Generate(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(m handlerMocks)
		fields   map[string]string
		files    map[string][]byte
		wantCode int
		wantErr  string
		wantID   int64
	}{
		{
			name: "按岗位出题",
			mock: func(m handlerMocks) {
				m.genSvc.EXPECT().Generate(gomock.Any(), service.GenerateRequest{
					Uid: uid, JobTitle: "Go", JobDescription: "后端",
				}).Return(domain.Interview{ID: 1, RawQuestions: "1. a\n2. b"}, nil)
			},
			fields:   map[string]string{"jobTitle": "Go", "jobDescription": "后端"},
			wantCode: http.StatusOK,
			wantID:   1,
		},
		{
			name: "按简历出题",
			mock: func(m handlerMocks) {
				m.genSvc.EXPECT().Generate(gomock.Any(), service.GenerateRequest{
					Uid: uid, Resume: []byte("pdf"),
				}).Return(domain.Interview{ID: 2, RawQuestions: []any{"a"}, ResumeURL: "https://x/1.pdf"}, nil)
			},
			files:    map[string][]byte{"file": []byte("pdf")},
			wantCode: http.StatusOK,
			wantID:   2,
		},
		{
			name: "参数错误",
			mock: func(m handlerMocks) {
				m.genSvc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(domain.Interview{}, service.ErrInvalidInput)
			},
			fields:   map[string]string{"jobTitle": "Go"},
			wantCode: http.StatusBadRequest,
			wantErr:  service.ErrInvalidInput.Error(),
		},
		{
			name: "超过次数",
			mock: func(m handlerMocks) {
				m.genSvc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(domain.Interview{}, service.ErrRateLimited)
			},
			fields:   map[string]string{"jobTitle": "Go", "jobDescription": "后端"},
			wantCode: http.StatusTooManyRequests,
			wantErr:  "Interview limit exceeded. You can only take one interview per day. Please try again tomorrow.",
		},
		{
			name: "被拒绝",
			mock: func(m handlerMocks) {
				m.genSvc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(domain.Interview{}, service.ErrBlocked)
			},
			fields:   map[string]string{"jobTitle": "Go", "jobDescription": "后端"},
			wantCode: http.StatusForbidden,
			wantErr:  "Request blocked",
		},
		{
			name: "其他错误",
			mock: func(m handlerMocks) {
				m.genSvc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(domain.Interview{}, errors.New("mock error"))
			},
			fields:   map[string]string{"jobTitle": "Go", "jobDescription": "后端"},
			wantCode: http.StatusInternalServerError,
			wantErr:  "Failed to generate interview",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newServer(t, tc.mock)
			body, contentType := multipartBody(t, tc.fields, tc.files)
			req, err := http.NewRequest(http.MethodPost, "/interview/generate", body)
			require.NoError(t, err)
			req.Header.Set("Content-Type", contentType)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantErr != "" {
				assert.Equal(t, tc.wantErr, test.ScanJSON[ErrorResp](recorder).Error)
				return
			}
			resp := test.ScanJSON[GenerateResp](recorder)
			assert.Equal(t, tc.wantID, resp.InterviewID)
			assert.NotEmpty(t, resp.Questions)
		})
	}
}

func TestHandler_Detail(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(m handlerMocks)
		wantCode int
		wantData Interview
	}{
		{
			name: "查询成功",
			mock: func(m handlerMocks) {
				m.svc.EXPECT().Detail(gomock.Any(), int64(1)).Return(domain.Interview{
					ID: 1, Uid: uid, RawQuestions: "1. a\n\n2. b", Status: domain.StatusPending,
				}, nil)
				m.svc.EXPECT().NextQuestionIndex(gomock.Any(), int64(1)).Return(1, nil)
			},
			wantCode: 0,
			wantData: Interview{
				ID:     1,
				Status: "pending",
				Questions: []Question{
					{Index: 0, Text: "a"},
					{Index: 1, Text: "b"},
				},
				NextIndex: 1,
			},
		},
		{
			name: "不是自己的面试",
			mock: func(m handlerMocks) {
				m.svc.EXPECT().Detail(gomock.Any(), int64(1)).Return(domain.Interview{ID: 1, Uid: uid + 1}, nil)
			},
			wantCode: errs.InterviewNoFound.Code,
		},
		{
			name: "面试不存在",
			mock: func(m handlerMocks) {
				m.svc.EXPECT().Detail(gomock.Any(), int64(1)).Return(domain.Interview{}, service.ErrInterviewNotFound)
			},
			wantCode: errs.InterviewNoFound.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newServer(t, tc.mock)
			req, err := http.NewRequest(http.MethodPost, "/interview/detail", iox.NewJSONReader(IDReq{ID: 1}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[Interview]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantData, res.Data)
		})
	}
}

func TestHandler_List(t *testing.T) {
	summaries := []domain.Summary{
		{
			Interview:     domain.Interview{ID: 2, Uid: uid, RawQuestions: "1. a"},
			QuestionCount: 1,
			ResponseCount: 1,
			HasFeedback:   true,
			Feedback:      domain.Feedback{ID: 5, InterviewID: 2, OverallScore: 8},
		},
		{
			Interview:     domain.Interview{ID: 1, Uid: uid, RawQuestions: "1. a\n2. b"},
			QuestionCount: 2,
			ResponseCount: 1,
		},
	}
	testCases := []struct {
		name      string
		req       ListReq
		mock      func(m handlerMocks)
		wantTotal int
		wantIDs   []int64
	}{
		{
			name: "分页",
			req:  ListReq{Offset: 0, Limit: 10},
			mock: func(m handlerMocks) {
				m.svc.EXPECT().List(gomock.Any(), uid, 0, 10).Return(summaries, int64(2), nil)
			},
			wantTotal: 2,
			wantIDs:   []int64{2, 1},
		},
		{
			name: "只看参加过的",
			req:  ListReq{AttendedOnly: true},
			mock: func(m handlerMocks) {
				m.svc.EXPECT().ListAttended(gomock.Any(), uid).Return(summaries[:1], nil)
			},
			wantTotal: 1,
			wantIDs:   []int64{2},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newServer(t, tc.mock)
			req, err := http.NewRequest(http.MethodPost, "/interview/list", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[ginx.DataList[InterviewSummary]]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan().Data
			assert.Equal(t, tc.wantTotal, res.Total)
			ids := make([]int64, 0, len(res.List))
			for _, item := range res.List {
				ids = append(ids, item.Interview.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
			// 有评估的一定算完成
			assert.True(t, res.List[0].Completed)
			require.NotNil(t, res.List[0].Feedback)
			assert.Equal(t, float64(8), res.List[0].Feedback.OverallScore)
		})
	}
}

func TestHandler_Record(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(m handlerMocks)
		fields   map[string]string
		files    map[string][]byte
		wantCode int
		wantResp RecordResp
	}{
		{
			name:     "缺少字段",
			mock:     func(m handlerMocks) {},
			fields:   map[string]string{"interviewId": "1"},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "只有文本",
			mock: func(m handlerMocks) {
				m.svc.EXPECT().Detail(gomock.Any(), int64(1)).Return(domain.Interview{ID: 1, Uid: uid}, nil)
				m.svc.EXPECT().SaveResponse(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, resp domain.Response) (int64, error) {
						assert.Equal(t, "我的回答", resp.ResponseText)
						assert.Equal(t, 0, resp.QuestionIndex)
						assert.Equal(t, uid, resp.Uid)
						assert.Equal(t, int64(12), resp.Duration)
						assert.Empty(t, resp.AudioURL)
						return 7, nil
					})
			},
			fields: map[string]string{
				"interviewId": "1", "questionIndex": "0", "questionText": "自我介绍",
				"responseText": " 我的回答 ", "duration": "12.5",
			},
			wantCode: http.StatusOK,
			wantResp: RecordResp{Success: true, Message: "Response recorded successfully", ID: 7},
		},
		{
			name: "录像上传失败不影响保存",
			mock: func(m handlerMocks) {
				m.svc.EXPECT().Detail(gomock.Any(), int64(1)).Return(domain.Interview{ID: 1, Uid: uid}, nil)
				m.uploader.EXPECT().Upload(gomock.Any(), "interviews/1", gomock.Any(), []byte("audio")).
					DoAndReturn(func(_ context.Context, _, name string, _ []byte) (string, error) {
						assert.True(t, strings.HasPrefix(name, "audio_"))
						assert.True(t, strings.HasSuffix(name, "_response.webm"))
						return "https://cdn/audio.webm", nil
					})
				m.uploader.EXPECT().Upload(gomock.Any(), "interviews/1", gomock.Any(), []byte("video")).
					Return("", errors.New("mock upload error"))
				m.svc.EXPECT().SaveResponse(gomock.Any(), gomock.Any()).Return(int64(8), nil)
			},
			fields: map[string]string{
				"interviewId": "1", "questionIndex": "1", "questionText": "项目",
			},
			files:    map[string][]byte{"audio": []byte("audio"), "video": []byte("video")},
			wantCode: http.StatusOK,
			wantResp: RecordResp{Success: true, Message: "Response recorded successfully", ID: 8, AudioURL: "https://cdn/audio.webm"},
		},
		{
			name: "不是自己的面试",
			mock: func(m handlerMocks) {
				m.svc.EXPECT().Detail(gomock.Any(), int64(1)).Return(domain.Interview{ID: 1, Uid: uid + 1}, nil)
			},
			fields: map[string]string{
				"interviewId": "1", "questionIndex": "1", "questionText": "项目",
			},
			wantCode: http.StatusNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newServer(t, tc.mock)
			body, contentType := multipartBody(t, tc.fields, tc.files)
			req, err := http.NewRequest(http.MethodPost, "/interview/responses/record", body)
			require.NoError(t, err)
			req.Header.Set("Content-Type", contentType)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode != http.StatusOK {
				return
			}
			assert.Equal(t, tc.wantResp, test.ScanJSON[RecordResp](recorder))
		})
	}
}
