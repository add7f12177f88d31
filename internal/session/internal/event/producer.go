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
	"strconv"

	"github.com/ecodeclub/mockinterview/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
)

// CompletedEventProducer 面试结束后通知评估模块
type CompletedEventProducer struct {
	producer mqx.Producer[InterviewCompletedEvent]
}

func NewCompletedEventProducer(q mq.MQ) (*CompletedEventProducer, error) {
	p, err := mqx.NewGeneralProducer[InterviewCompletedEvent](q, InterviewCompletedEventName)
	if err != nil {
		return nil, err
	}
	// 同一场面试的事件按 interviewId 分区，消费端已有评估的时候直接跳过
	return &CompletedEventProducer{producer: p.WithKey(func(evt InterviewCompletedEvent) string {
		return strconv.FormatInt(evt.InterviewID, 10)
	})}, nil
}

func (p *CompletedEventProducer) Finish(ctx context.Context, interviewID, uid int64) error {
	return p.producer.Produce(ctx, InterviewCompletedEvent{InterviewID: interviewID, Uid: uid})
}
