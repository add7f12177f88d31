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

	"github.com/yankeguo/zhipu"
)

type ZhipuCompleter struct {
	client *zhipu.Client
	model  string
}

func NewZhipuCompleter(apiKey, model string) (*ZhipuCompleter, error) {
	client, err := zhipu.NewClient(zhipu.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &ZhipuCompleter{client: client, model: model}, nil
}

func (z *ZhipuCompleter) Name() string {
	return "zhipu:" + z.model
}

func (z *ZhipuCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	completion, err := z.client.ChatCompletion(z.model).
		AddMessage(zhipu.ChatCompletionMessage{
			Role:    zhipu.RoleUser,
			Content: prompt,
		}).Do(ctx)
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("大模型没有返回任何结果")
	}
	return completion.Choices[0].Message.Content, nil
}
