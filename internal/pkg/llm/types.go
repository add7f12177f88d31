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

package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gotomicro/ego/core/elog"
)

var ErrNoProvider = errors.New("没有可用的大模型")

// Completer 单轮问答，返回模型的原始输出
//
//go:generate mockgen -source=./types.go -destination=./mocks/types.mock.go -package=llmmocks Completer
type Completer interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// Chain 按顺序尝试，直到有一个成功
type Chain struct {
	completers []Completer
	logger     *elog.Component
}

func NewChain(completers ...Completer) *Chain {
	return &Chain{
		completers: completers,
		logger:     elog.DefaultLogger.With(elog.FieldComponent("LLMChain")),
	}
}

func (c *Chain) Name() string {
	names := make([]string, 0, len(c.completers))
	for _, cp := range c.completers {
		names = append(names, cp.Name())
	}
	return "chain(" + strings.Join(names, ",") + ")"
}

func (c *Chain) Complete(ctx context.Context, prompt string) (string, error) {
	if len(c.completers) == 0 {
		return "", ErrNoProvider
	}
	var lastErr error
	for _, cp := range c.completers {
		ans, err := cp.Complete(ctx, prompt)
		if err == nil {
			return ans, nil
		}
		c.logger.Warn("大模型调用失败，尝试下一个",
			elog.String("provider", cp.Name()), elog.FieldErr(err))
		lastErr = err
	}
	return "", fmt.Errorf("%w: %w", ErrNoProvider, lastErr)
}

// CleanJSON 去掉模型喜欢加的 ```json 代码块包装，并截取第一个 JSON 值
func CleanJSON(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	content = strings.TrimSpace(strings.TrimSuffix(content, "```"))

	open, closing := "{", "}"
	if strings.HasPrefix(content, "[") {
		open, closing = "[", "]"
	}
	start := strings.Index(content, open)
	end := strings.LastIndex(content, closing)
	if start != -1 && end > start {
		content = content[start : end+1]
	}
	return strings.TrimSpace(content)
}
