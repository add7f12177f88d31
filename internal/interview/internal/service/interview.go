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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/repository"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInterviewNotFound = errors.New("面试不存在")
	ErrFeedbackNotFound  = errors.New("面试评估不存在")
)

// InterviewService 面试、回答、评估的持久化入口。
// 续答位置永远从已保存的回答推导，不信任客户端的值。
//
//go:generate mockgen -source=./interview.go -destination=../../mocks/interview.mock.go -package=interviewmocks InterviewService
type InterviewService interface {
	Create(ctx context.Context, interview domain.Interview) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Interview, error)
	// Complete 所有题目回答完毕
	Complete(ctx context.Context, id int64) error
	List(ctx context.Context, uid int64, offset, limit int) ([]domain.Summary, int64, error)
	// ListAttended 参加过的面试，不分页
	ListAttended(ctx context.Context, uid int64) ([]domain.Summary, error)

	SaveResponse(ctx context.Context, resp domain.Response) (int64, error)
	Responses(ctx context.Context, interviewID int64) ([]domain.Response, error)
	NextQuestionIndex(ctx context.Context, interviewID int64) (int, error)

	// SaveFeedback 总是插入新的一条，重复生成会产生多条，读取时以第一条为准
	SaveFeedback(ctx context.Context, fb domain.Feedback) (int64, error)
	Feedback(ctx context.Context, interviewID int64) (domain.Feedback, error)
}

type interviewService struct {
	repo repository.InterviewRepository
}

func NewInterviewService(repo repository.InterviewRepository) InterviewService {
	return &interviewService{repo: repo}
}

func (s *interviewService) Create(ctx context.Context, interview domain.Interview) (int64, error) {
	interview.Status = domain.StatusPending
	return s.repo.Create(ctx, interview)
}

func (s *interviewService) Detail(ctx context.Context, id int64) (domain.Interview, error) {
	res, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Interview{}, ErrInterviewNotFound
	}
	return res, err
}

func (s *interviewService) Complete(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, domain.StatusCompleted)
}

func (s *interviewService) List(ctx context.Context, uid int64, offset, limit int) ([]domain.Summary, int64, error) {
	var (
		interviews []domain.Interview
		total      int64
	)
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		interviews, err = s.repo.FindByUid(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByUid(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	if len(interviews) == 0 {
		return []domain.Summary{}, total, nil
	}

	ids := slice.Map(interviews, func(_ int, src domain.Interview) int64 {
		return src.ID
	})
	var (
		counts    map[int64]int64
		feedbacks map[int64]domain.Feedback
	)
	eg = errgroup.Group{}
	eg.Go(func() error {
		var err error
		counts, err = s.repo.CountResponses(ctx, ids)
		return err
	})
	eg.Go(func() error {
		var err error
		feedbacks, err = s.repo.FirstFeedbacks(ctx, ids)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return slice.Map(interviews, func(_ int, src domain.Interview) domain.Summary {
		fb, ok := feedbacks[src.ID]
		return domain.Summary{
			Interview:     src,
			QuestionCount: len(src.Questions()),
			ResponseCount: counts[src.ID],
			HasFeedback:   ok,
			Feedback:      fb,
		}
	}), total, nil
}

func (s *interviewService) ListAttended(ctx context.Context, uid int64) ([]domain.Summary, error) {
	// limit 为 -1 时 gorm 不加 LIMIT
	all, _, err := s.List(ctx, uid, 0, -1)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Summary, 0, len(all))
	for _, sum := range all {
		if sum.Attended() {
			res = append(res, sum)
		}
	}
	return res, nil
}

func (s *interviewService) SaveResponse(ctx context.Context, resp domain.Response) (int64, error) {
	if resp.Timestamp == 0 {
		resp.Timestamp = time.Now().UnixMilli()
	}
	return s.repo.CreateResponse(ctx, resp)
}

func (s *interviewService) Responses(ctx context.Context, interviewID int64) ([]domain.Response, error) {
	return s.repo.FindResponses(ctx, interviewID)
}

func (s *interviewService) NextQuestionIndex(ctx context.Context, interviewID int64) (int, error) {
	return s.repo.NextQuestionIndex(ctx, interviewID)
}

func (s *interviewService) SaveFeedback(ctx context.Context, fb domain.Feedback) (int64, error) {
	return s.repo.CreateFeedback(ctx, fb)
}

func (s *interviewService) Feedback(ctx context.Context, interviewID int64) (domain.Feedback, error) {
	res, err := s.repo.FirstFeedback(ctx, interviewID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Feedback{}, ErrFeedbackNotFound
	}
	return res, err
}
