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

package avatar

import (
	"net/http"
	"os"
	"time"

	"github.com/ecodeclub/mockinterview/internal/avatar/internal/service"
	"github.com/ecodeclub/mockinterview/internal/avatar/internal/web"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule() (*Module, error) {
	wire.Build(
		initConfig,
		initClient,
		initPollConfig,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

type RetryStrategy struct {
	Interval    time.Duration `yaml:"interval"`
	MaxInterval time.Duration `yaml:"maxInterval"`
	MaxRetries  int32         `yaml:"maxRetries"`
}

type Cfg struct {
	BaseURL string `yaml:"baseURL"`
	APIKey  string `yaml:"apiKey"`
	// SourceURL 数字人形象图片
	SourceURL     string             `yaml:"sourceURL"`
	Poll          service.PollConfig `yaml:"poll"`
	RetryStrategy RetryStrategy      `yaml:"retryStrategy"`
}

func initConfig() Cfg {
	var cfg Cfg
	err := econf.UnmarshalKey("did", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("D_ID_API_KEY")
	}
	if cfg.RetryStrategy.Interval <= 0 {
		cfg.RetryStrategy = RetryStrategy{Interval: 200 * time.Millisecond, MaxInterval: 2 * time.Second, MaxRetries: 2}
	}
	return cfg
}

func initClient(cfg Cfg) service.Client {
	return service.NewDIDClient(cfg.BaseURL, cfg.APIKey, cfg.SourceURL, &http.Client{Timeout: 30 * time.Second},
		cfg.RetryStrategy.Interval, cfg.RetryStrategy.MaxInterval, cfg.RetryStrategy.MaxRetries)
}

func initPollConfig(cfg Cfg) service.PollConfig {
	return cfg.Poll
}
