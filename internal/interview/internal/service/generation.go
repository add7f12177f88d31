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
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/mockinterview/internal/interview/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
)

const ResumeFolder = "/resumes/"

var (
	ErrInvalidInput = errors.New("需要上传简历，或者同时填写岗位名称和岗位描述")
	ErrRateLimited  = errors.New("超过每日生成面试的次数限制")
	ErrBlocked      = errors.New("请求被拒绝")
	ErrNoQuestions  = errors.New("没有生成任何题目")
)

// FileUploader 上传文件，返回可以公开访问的 URL
type FileUploader interface {
	Upload(ctx context.Context, folder, name string, data []byte) (string, error)
}

type GenerateRequest struct {
	Uid            int64
	Resume         []byte
	JobTitle       string
	JobDescription string
}

//go:generate mockgen -source=./generation.go -destination=../../mocks/generation.mock.go -package=interviewmocks GenerationService
type GenerationService interface {
	// Generate 出题并创建面试。每个用户 24 小时内只能成功生成一次
	Generate(ctx context.Context, req GenerateRequest) (domain.Interview, error)
}

type generationService struct {
	svc      InterviewService
	quota    cache.QuotaCache
	uploader FileUploader
	source   QuestionSource
	logger   *elog.Component
}

func NewGenerationService(svc InterviewService, quota cache.QuotaCache,
	uploader FileUploader, source QuestionSource) GenerationService {
	return &generationService{
		svc:      svc,
		quota:    quota,
		uploader: uploader,
		source:   source,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("InterviewGeneration")),
	}
}

func (s *generationService) Generate(ctx context.Context, req GenerateRequest) (res domain.Interview, err error) {
	req.JobTitle = strings.TrimSpace(req.JobTitle)
	req.JobDescription = strings.TrimSpace(req.JobDescription)
	if len(req.Resume) == 0 && (req.JobTitle == "" || req.JobDescription == "") {
		return domain.Interview{}, ErrInvalidInput
	}

	ok, err := s.quota.Acquire(ctx, req.Uid)
	if err != nil {
		s.logger.Error("检查出题次数失败", elog.FieldErr(err), elog.Int64("uid", req.Uid))
		return domain.Interview{}, fmt.Errorf("%w: %w", ErrBlocked, err)
	}
	if !ok {
		return domain.Interview{}, ErrRateLimited
	}
	defer func() {
		if err == nil {
			return
		}
		// 生成失败不占用当天的次数
		if er := s.quota.Release(context.WithoutCancel(ctx), req.Uid); er != nil {
			s.logger.Error("释放出题次数失败", elog.FieldErr(er), elog.Int64("uid", req.Uid))
		}
	}()

	interview := domain.Interview{
		Uid:            req.Uid,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
		Status:         domain.StatusPending,
	}
	if len(req.Resume) > 0 {
		name := fmt.Sprintf("%d.pdf", time.Now().UnixMilli())
		interview.ResumeURL, err = s.uploader.Upload(ctx, ResumeFolder, name, req.Resume)
		if err != nil {
			return domain.Interview{}, fmt.Errorf("上传简历失败: %w", err)
		}
	}

	interview.RawQuestions, err = s.source.Questions(ctx, SourceRequest{
		FileURL:        interview.ResumeURL,
		JobTitle:       interview.JobTitle,
		JobDescription: interview.JobDescription,
	})
	if err != nil {
		return domain.Interview{}, fmt.Errorf("出题失败: %w", err)
	}
	if len(interview.Questions()) == 0 {
		return domain.Interview{}, ErrNoQuestions
	}

	interview.ID, err = s.svc.Create(ctx, interview)
	if err != nil {
		return domain.Interview{}, err
	}
	return interview, nil
}
