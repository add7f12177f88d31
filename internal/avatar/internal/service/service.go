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

	"github.com/ecodeclub/mockinterview/internal/avatar/internal/domain"
	"github.com/gotomicro/ego/core/elog"
)

var ErrInvalidInput = errors.New("说话内容不能为空")

type PollConfig struct {
	// Interval 两次查询之间的间隔
	Interval    time.Duration `yaml:"interval"`
	MaxAttempts int           `yaml:"maxAttempts"`
}

func DefaultPollConfig() PollConfig {
	return PollConfig{
		Interval:    2 * time.Second,
		MaxAttempts: 15,
	}
}

//go:generate mockgen -source=./service.go -destination=../../mocks/service.mock.go -package=avatarmocks Service
type Service interface {
	// Request 请求数字人读出 text。结果已经可用时直接返回地址，否则返回任务 ID
	Request(ctx context.Context, text, sessionID string) (domain.Result, error)
	Status(ctx context.Context, talkID string) (domain.Talk, error)
	// Wait 轮询任务直到结束，次数有上限。总是返回一个结果，ctx 结束时为 OutcomeCanceled
	Wait(ctx context.Context, talkID string) domain.Outcome
}

type service struct {
	client Client
	poll   PollConfig
	logger *elog.Component
}

func NewService(client Client, poll PollConfig) Service {
	if poll.Interval <= 0 || poll.MaxAttempts <= 0 {
		poll = DefaultPollConfig()
	}
	return &service{
		client: client,
		poll:   poll,
		logger: elog.DefaultLogger.With(elog.FieldComponent("AvatarService")),
	}
}

func (s *service) Request(ctx context.Context, text, sessionID string) (domain.Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Result{}, ErrInvalidInput
	}
	talk, err := s.client.CreateTalk(ctx, text)
	if err != nil {
		s.logger.Error("创建数字人任务失败", elog.FieldErr(err), elog.String("sessionId", sessionID))
		return domain.Result{}, err
	}
	if talk.ResultURL != "" {
		return domain.Result{ResultURL: talk.ResultURL, TalkID: talk.ID}, nil
	}
	return domain.Result{TalkID: talk.ID}, nil
}

func (s *service) Status(ctx context.Context, talkID string) (domain.Talk, error) {
	if talkID == "" {
		return domain.Talk{}, ErrInvalidInput
	}
	return s.client.GetTalk(ctx, talkID)
}

func (s *service) Wait(ctx context.Context, talkID string) domain.Outcome {
	timer := time.NewTimer(s.poll.Interval)
	defer timer.Stop()
	for attempt := 1; attempt <= s.poll.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return domain.Outcome{Kind: domain.OutcomeCanceled, Attempts: attempt - 1, Err: ctx.Err()}
		case <-timer.C:
		}
		talk, err := s.client.GetTalk(ctx, talkID)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return domain.Outcome{Kind: domain.OutcomeCanceled, Attempts: attempt, Err: ctx.Err()}
			}
			return domain.Outcome{Kind: domain.OutcomeFailed, Attempts: attempt, Err: err}
		case talk.Status == domain.TalkStatusDone && talk.ResultURL != "":
			return domain.Outcome{Kind: domain.OutcomeDone, Attempts: attempt, ResultURL: talk.ResultURL}
		case talk.Status.Failed():
			return domain.Outcome{Kind: domain.OutcomeError, Attempts: attempt,
				Err: errors.New("数字人渲染失败: " + talk.Status.String())}
		}
		timer.Reset(s.poll.Interval)
	}
	return domain.Outcome{Kind: domain.OutcomeTimeout, Attempts: s.poll.MaxAttempts,
		Err: errors.New("等待数字人渲染超时")}
}
