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

package session

import (
	"time"

	"github.com/ecodeclub/mockinterview/internal/avatar"
	"github.com/ecodeclub/mockinterview/internal/interview"
	"github.com/ecodeclub/mockinterview/internal/media"
	"github.com/ecodeclub/mockinterview/internal/session/internal/event"
	"github.com/ecodeclub/mockinterview/internal/session/internal/job"
	"github.com/ecodeclub/mockinterview/internal/session/internal/service"
	"github.com/ecodeclub/mockinterview/internal/session/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(interviewSvc interview.Service,
	avatarSvc avatar.Service,
	uploader *media.URLUploader,
	q mq.MQ) (*Module, error) {
	wire.Build(
		initConfig,
		event.NewCompletedEventProducer,
		initDeps,
		initRegistry,
		web.NewHandler,
		initSweepJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

type Cfg struct {
	Controller service.Config `yaml:"controller"`
	// MaxMediaBytes 每道题每种媒体最多缓存多少字节
	MaxMediaBytes int `yaml:"maxMediaBytes"`
	// Idle 超过这个时间没有操作的会话会被释放
	Idle time.Duration `yaml:"idle"`
}

func initConfig() Cfg {
	cfg := Cfg{
		Controller:    service.DefaultConfig(),
		MaxMediaBytes: 100 << 20,
		Idle:          30 * time.Minute,
	}
	if econf.Get("session") == nil {
		return cfg
	}
	err := econf.UnmarshalKey("session", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func initDeps(cfg Cfg,
	interviewSvc interview.Service,
	avatarSvc avatar.Service,
	uploader *media.URLUploader,
	producer *event.CompletedEventProducer) service.Deps {
	return service.Deps{
		Gateway:  interviewSvc,
		Avatar:   avatarSvc,
		Storage:  uploader,
		Devices:  service.NewBufferDevices(cfg.MaxMediaBytes),
		Speech:   service.TranscriptSpeech{},
		Finisher: producer,
	}
}

func initRegistry(cfg Cfg, deps service.Deps) *service.Registry {
	return service.NewRegistry(cfg.Controller, deps)
}

func initSweepJob(cfg Cfg, registry *service.Registry) *job.SweepIdleSessionsJob {
	return job.NewSweepIdleSessionsJob(registry, cfg.Idle)
}
