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

package ioc

import (
	"net/http"
	"time"

	"github.com/ecodeclub/mockinterview/internal/pkg/webhook"
	"github.com/gotomicro/ego/core/econf"
)

// InitWebhookClient 出题和评估的工作流都在同一个 n8n 上
func InitWebhookClient() *webhook.Client {
	type Config struct {
		BaseURL     string        `yaml:"baseURL"`
		Timeout     time.Duration `yaml:"timeout"`
		Interval    time.Duration `yaml:"interval"`
		MaxInterval time.Duration `yaml:"maxInterval"`
		MaxRetries  int32         `yaml:"maxRetries"`
	}
	cfg := Config{
		Timeout:     2 * time.Minute,
		Interval:    time.Second,
		MaxInterval: 5 * time.Second,
		MaxRetries:  2,
	}
	err := econf.UnmarshalKey("webhook", &cfg)
	if err != nil {
		panic(err)
	}
	return webhook.NewClient(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout},
		cfg.Interval, cfg.MaxInterval, cfg.MaxRetries)
}
