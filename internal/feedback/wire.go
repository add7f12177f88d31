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

//go:build wireinject

package feedback

import (
	"context"

	"github.com/ecodeclub/mockinterview/internal/feedback/internal/event"
	"github.com/ecodeclub/mockinterview/internal/feedback/internal/service"
	"github.com/ecodeclub/mockinterview/internal/feedback/internal/web"
	"github.com/ecodeclub/mockinterview/internal/interview"
	"github.com/ecodeclub/mockinterview/internal/pkg/llm"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(interviewSvc interview.Service, q mq.MQ, poster WebhookPoster, completer llm.Completer) (*Module, error) {
	wire.Build(
		initGenerator,
		service.NewService,
		web.NewHandler,
		initCompletedConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func initGenerator(poster WebhookPoster, completer llm.Completer) service.Generator {
	// 例如 webhook.reviewPath: /webhook/review
	path := econf.GetString("webhook.reviewPath")
	if path == "" {
		path = "/webhook/review"
	}
	return service.NewWorkflowGenerator(poster, path, completer)
}

func initCompletedConsumer(svc service.Service, q mq.MQ) *event.CompletedConsumer {
	c, err := event.NewCompletedConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}
