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
	"os"

	"github.com/ecodeclub/mockinterview/internal/pkg/llm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

// InitLLM webhook 失败时的兜底，按配置顺序尝试，没有配置 key 的跳过
func InitLLM() llm.Completer {
	type Config struct {
		OpenAI struct {
			BaseURL string `yaml:"baseURL"`
			APIKey  string `yaml:"apiKey"`
			Model   string `yaml:"model"`
		} `yaml:"openai"`
		Zhipu struct {
			APIKey string `yaml:"apiKey"`
			Model  string `yaml:"model"`
		} `yaml:"zhipu"`
	}
	var cfg Config
	err := econf.UnmarshalKey("llm", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.OpenAI.APIKey == "" {
		cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.Zhipu.APIKey == "" {
		cfg.Zhipu.APIKey = os.Getenv("ZHIPU_API_KEY")
	}

	var completers []llm.Completer
	if cfg.OpenAI.APIKey != "" {
		completers = append(completers, llm.NewOpenAICompleter(cfg.OpenAI.BaseURL, cfg.OpenAI.APIKey, cfg.OpenAI.Model))
	}
	if cfg.Zhipu.APIKey != "" {
		zp, er := llm.NewZhipuCompleter(cfg.Zhipu.APIKey, cfg.Zhipu.Model)
		if er != nil {
			panic(er)
		}
		completers = append(completers, zp)
	}
	if len(completers) == 0 {
		elog.DefaultLogger.Warn("没有配置大模型，webhook 失败时没有兜底")
	}
	return llm.NewChain(completers...)
}
