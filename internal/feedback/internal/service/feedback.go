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
	"strings"
	"time"

	"github.com/ecodeclub/mockinterview/internal/feedback/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/interview"
	"github.com/gotomicro/ego/core/elog"
)

var ErrInvalidInput = errors.New("缺少面试 ID 或用户 ID")

// ErrInterviewNotFound 面试不存在，或者不属于当前用户
var ErrInterviewNotFound = interview.ErrInterviewNotFound

// Service 汇总一场面试的问答，生成并保存评估
//
//go:generate mockgen -source=./feedback.go -destination=../../mocks/feedback.mock.go -package=feedbackmocks Service
type Service interface {
	Generate(ctx context.Context, interviewID, uid int64) (interview.Feedback, error)
	// GenerateOnce 已经有评估的时候直接返回已有的，不再调用评估服务
	GenerateOnce(ctx context.Context, interviewID, uid int64) (interview.Feedback, error)
}

type service struct {
	interviewSvc interview.Service
	generator    Generator
	logger       *elog.Component
}

func NewService(interviewSvc interview.Service, generator Generator) Service {
	return &service{
		interviewSvc: interviewSvc,
		generator:    generator,
		logger:       elog.DefaultLogger.With(elog.FieldComponent("FeedbackService")),
	}
}

func (s *service) Generate(ctx context.Context, interviewID, uid int64) (interview.Feedback, error) {
	if interviewID <= 0 || uid <= 0 {
		return interview.Feedback{}, ErrInvalidInput
	}
	intr, err := s.interviewSvc.Detail(ctx, interviewID)
	if err != nil {
		return interview.Feedback{}, err
	}
	if intr.Uid != uid {
		return interview.Feedback{}, ErrInterviewNotFound
	}
	responses, err := s.interviewSvc.Responses(ctx, interviewID)
	if err != nil {
		return interview.Feedback{}, err
	}
	qas := collect(intr.Questions(), responses)
	review, err := s.generator.Review(ctx, qas)
	if err != nil {
		return interview.Feedback{}, err
	}
	fb := interview.Feedback{
		InterviewID:               interviewID,
		Uid:                       uid,
		Feedback:                  review.Feedback,
		KnowledgeBasedRating:      review.KnowledgeBasedRating,
		SuggestionsForImprovement: review.SuggestionsForImprovement,
		OverallScore:              review.OverallScore,
		QuestionsAndResponses:     make([]interview.QA, 0, len(qas)),
		Ctime:                     time.Now().UnixMilli(),
	}
	for _, qa := range qas {
		fb.QuestionsAndResponses = append(fb.QuestionsAndResponses, interview.QA{
			Question: qa.Question,
			Response: qa.Answer,
		})
	}
	fb.ID, err = s.interviewSvc.SaveFeedback(ctx, fb)
	if err != nil {
		return interview.Feedback{}, err
	}
	s.logger.Info("生成面试评估",
		elog.Int64("interviewId", interviewID),
		elog.Int64("feedbackId", fb.ID),
		elog.Int64("questions", int64(len(qas))))
	return fb, nil
}

func (s *service) GenerateOnce(ctx context.Context, interviewID, uid int64) (interview.Feedback, error) {
	if interviewID <= 0 || uid <= 0 {
		return interview.Feedback{}, ErrInvalidInput
	}
	fb, err := s.interviewSvc.Feedback(ctx, interviewID)
	switch {
	case err == nil:
		s.logger.Info("面试已有评估，跳过",
			elog.Int64("interviewId", interviewID), elog.Int64("feedbackId", fb.ID))
		return fb, nil
	case errors.Is(err, interview.ErrFeedbackNotFound):
		return s.Generate(ctx, interviewID, uid)
	default:
		return interview.Feedback{}, err
	}
}

// collect 每道题一条问答，没有回答的题目用占位文本。
// 题目解析不出来的时候退回到回答里保存的题目
func collect(questions []interview.Question, responses []interview.Response) []domain.QA {
	answers := make(map[int]interview.Response, len(responses))
	for _, r := range responses {
		if _, ok := answers[r.QuestionIndex]; !ok {
			answers[r.QuestionIndex] = r
		}
	}
	if len(questions) == 0 {
		res := make([]domain.QA, 0, len(responses))
		for _, r := range responses {
			res = append(res, domain.QA{Question: r.QuestionText, Answer: answerOf(r)})
		}
		return res
	}
	res := make([]domain.QA, 0, len(questions))
	for _, q := range questions {
		answer := domain.NoResponse
		if r, ok := answers[q.Index]; ok {
			answer = answerOf(r)
		}
		res = append(res, domain.QA{Question: q.Text, Answer: answer})
	}
	return res
}

func answerOf(r interview.Response) string {
	text := strings.TrimSpace(r.ResponseText)
	if text == "" {
		return domain.NoResponse
	}
	return text
}
