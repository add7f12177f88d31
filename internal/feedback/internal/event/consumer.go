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

package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ecodeclub/mockinterview/internal/feedback/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// CompletedConsumer 面试结束后异步生成评估，失败只记录日志
type CompletedConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewCompletedConsumer(svc service.Service, q mq.MQ) (*CompletedConsumer, error) {
	const groupID = "feedback"
	consumer, err := q.Consumer(interviewCompletedEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &CompletedConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("CompletedConsumer")),
	}, nil
}

func (c *CompletedConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if ctx.Err() != nil {
				return
			}
			if er != nil {
				c.logger.Error("消费面试结束事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *CompletedConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt InterviewCompletedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	fb, err := c.svc.GenerateOnce(ctx, evt.InterviewID, evt.Uid)
	if errors.Is(err, service.ErrInvalidInput) || errors.Is(err, service.ErrInterviewNotFound) {
		// 重试也没用
		c.logger.Warn("忽略面试结束事件", elog.FieldErr(err), elog.Any("event", evt))
		return nil
	}
	if err != nil {
		return fmt.Errorf("生成面试评估失败 interviewId=%d: %w", evt.InterviewID, err)
	}
	c.logger.Info("面试评估已生成", elog.Int64("interviewId", evt.InterviewID), elog.Int64("feedbackId", fb.ID))
	return nil
}
