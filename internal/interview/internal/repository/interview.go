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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/repository/dao"
)

var ErrRecordNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./interview.go -package=repomocks -destination=mocks/interview.mock.go InterviewRepository
type InterviewRepository interface {
	Create(ctx context.Context, interview domain.Interview) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Interview, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	FindByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Interview, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)

	CreateResponse(ctx context.Context, resp domain.Response) (int64, error)
	// FindResponses 按题目下标升序，同一道题只保留最早的回答
	FindResponses(ctx context.Context, interviewID int64) ([]domain.Response, error)
	// NextQuestionIndex 最大已回答下标 + 1，没有回答时为 0
	NextQuestionIndex(ctx context.Context, interviewID int64) (int, error)
	CountResponses(ctx context.Context, interviewIDs []int64) (map[int64]int64, error)

	CreateFeedback(ctx context.Context, fb domain.Feedback) (int64, error)
	FirstFeedback(ctx context.Context, interviewID int64) (domain.Feedback, error)
	// FirstFeedbacks 每个面试的第一份评估
	FirstFeedbacks(ctx context.Context, interviewIDs []int64) (map[int64]domain.Feedback, error)
}

type interviewRepository struct {
	dao dao.InterviewDAO
}

func NewInterviewRepository(interviewDAO dao.InterviewDAO) InterviewRepository {
	return &interviewRepository{dao: interviewDAO}
}

func (r *interviewRepository) Create(ctx context.Context, interview domain.Interview) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(interview))
}

func (r *interviewRepository) FindByID(ctx context.Context, id int64) (domain.Interview, error) {
	res, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Interview{}, err
	}
	return r.toDomain(res), nil
}

func (r *interviewRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, status.String())
}

func (r *interviewRepository) FindByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Interview, error) {
	res, err := r.dao.FindByUid(ctx, uid, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(_ int, src dao.Interview) domain.Interview {
		return r.toDomain(src)
	}), nil
}

func (r *interviewRepository) CountByUid(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByUid(ctx, uid)
}

func (r *interviewRepository) CreateResponse(ctx context.Context, resp domain.Response) (int64, error) {
	return r.dao.CreateResponse(ctx, dao.Response{
		InterviewID:   resp.InterviewID,
		QuestionIndex: resp.QuestionIndex,
		QuestionText:  resp.QuestionText,
		ResponseText:  resp.ResponseText,
		AudioURL:      resp.AudioURL,
		VideoURL:      resp.VideoURL,
		Uid:           resp.Uid,
		Timestamp:     resp.Timestamp,
		Duration:      resp.Duration,
	})
}

func (r *interviewRepository) FindResponses(ctx context.Context, interviewID int64) ([]domain.Response, error) {
	res, err := r.dao.FindResponses(ctx, interviewID)
	if err != nil {
		return nil, err
	}
	return domain.Dedup(slice.Map(res, func(_ int, src dao.Response) domain.Response {
		return domain.Response{
			ID:            src.ID,
			InterviewID:   src.InterviewID,
			QuestionIndex: src.QuestionIndex,
			QuestionText:  src.QuestionText,
			ResponseText:  src.ResponseText,
			AudioURL:      src.AudioURL,
			VideoURL:      src.VideoURL,
			Uid:           src.Uid,
			Timestamp:     src.Timestamp,
			Duration:      src.Duration,
		}
	})), nil
}

func (r *interviewRepository) NextQuestionIndex(ctx context.Context, interviewID int64) (int, error) {
	maxIdx, err := r.dao.MaxQuestionIndex(ctx, interviewID)
	if err != nil {
		return 0, err
	}
	if !maxIdx.Valid {
		return 0, nil
	}
	return int(maxIdx.Int64) + 1, nil
}

func (r *interviewRepository) CountResponses(ctx context.Context, interviewIDs []int64) (map[int64]int64, error) {
	counts, err := r.dao.CountResponses(ctx, interviewIDs)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]int64, len(counts))
	for _, c := range counts {
		res[c.InterviewID] = c.Cnt
	}
	return res, nil
}

func (r *interviewRepository) CreateFeedback(ctx context.Context, fb domain.Feedback) (int64, error) {
	return r.dao.CreateFeedback(ctx, dao.Feedback{
		InterviewID:          fb.InterviewID,
		Uid:                  fb.Uid,
		Feedback:             fb.Feedback,
		KnowledgeBasedRating: fb.KnowledgeBasedRating,
		Suggestions: sqlx.JsonColumn[[]string]{
			Val:   fb.SuggestionsForImprovement,
			Valid: true,
		},
		OverallScore: fb.OverallScore,
		QuestionsAndResponses: sqlx.JsonColumn[[]dao.QAEntry]{
			Val: slice.Map(fb.QuestionsAndResponses, func(_ int, src domain.QA) dao.QAEntry {
				return dao.QAEntry{Question: src.Question, Response: src.Response}
			}),
			Valid: true,
		},
	})
}

func (r *interviewRepository) FirstFeedback(ctx context.Context, interviewID int64) (domain.Feedback, error) {
	res, err := r.dao.FirstFeedback(ctx, interviewID)
	if err != nil {
		return domain.Feedback{}, err
	}
	return r.toFeedbackDomain(res), nil
}

func (r *interviewRepository) FirstFeedbacks(ctx context.Context, interviewIDs []int64) (map[int64]domain.Feedback, error) {
	fbs, err := r.dao.FindFeedbacks(ctx, interviewIDs)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Feedback, len(fbs))
	// fbs 按 id 升序，先出现的就是第一份
	for _, fb := range fbs {
		if _, ok := res[fb.InterviewID]; ok {
			continue
		}
		res[fb.InterviewID] = r.toFeedbackDomain(fb)
	}
	return res, nil
}

func (r *interviewRepository) toEntity(i domain.Interview) dao.Interview {
	return dao.Interview{
		ID:  i.ID,
		Uid: i.Uid,
		Questions: sqlx.JsonColumn[any]{
			Val:   i.RawQuestions,
			Valid: i.RawQuestions != nil,
		},
		ResumeURL:      i.ResumeURL,
		JobTitle:       i.JobTitle,
		JobDescription: i.JobDescription,
		Status:         i.Status.String(),
	}
}

func (r *interviewRepository) toDomain(i dao.Interview) domain.Interview {
	return domain.Interview{
		ID:             i.ID,
		Uid:            i.Uid,
		RawQuestions:   i.Questions.Val,
		ResumeURL:      i.ResumeURL,
		JobTitle:       i.JobTitle,
		JobDescription: i.JobDescription,
		Status:         domain.Status(i.Status),
		Ctime:          i.Ctime,
		Utime:          i.Utime,
	}
}

func (r *interviewRepository) toFeedbackDomain(fb dao.Feedback) domain.Feedback {
	return domain.Feedback{
		ID:                        fb.ID,
		InterviewID:               fb.InterviewID,
		Uid:                       fb.Uid,
		Feedback:                  fb.Feedback,
		KnowledgeBasedRating:      fb.KnowledgeBasedRating,
		SuggestionsForImprovement: fb.Suggestions.Val,
		OverallScore:              fb.OverallScore,
		QuestionsAndResponses: slice.Map(fb.QuestionsAndResponses.Val, func(_ int, src dao.QAEntry) domain.QA {
			return domain.QA{Question: src.Question, Response: src.Response}
		}),
		Ctime: fb.Ctime,
	}
}
