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

package interview

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/repository"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/repository/cache"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/repository/dao"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/service"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/web"
	"github.com/ecodeclub/mockinterview/internal/pkg/llm"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component, ec ecache.Cache,
	uploader FileUploader, poster WebhookPoster, completer llm.Completer) (*Module, error) {
	wire.Build(
		InitService,
		cache.NewQuotaECache,
		initQuestionSource,
		service.NewGenerationService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var (
	once = &sync.Once{}
	svc  service.InterviewService
)

func InitService(db *egorm.Component) Service {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		d := dao.NewGORMInterviewDAO(db)
		r := repository.NewInterviewRepository(d)
		svc = service.NewInterviewService(r)
	})
	return svc
}

func initQuestionSource(poster WebhookPoster, completer llm.Completer) service.QuestionSource {
	// 例如 webhook.questionsPath: /webhook/interview-questions
	path := econf.GetString("webhook.questionsPath")
	if path == "" {
		path = "/webhook/interview-questions"
	}
	return service.NewWorkflowQuestionSource(poster, path, completer)
}
