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

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ecodeclub/mockinterview/internal/feedback/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/pkg/llm"
	"github.com/gotomicro/ego/core/elog"
)

var ErrNoReview = errors.New("评估服务没有返回结果")

type WebhookPoster interface {
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
}

// Generator 根据所有问答生成评估
//
//go:generate mockgen -source=./generator.go -destination=../../mocks/generator.mock.go -package=feedbackmocks Generator
type Generator interface {
	Review(ctx context.Context, qas []domain.QA) (domain.Review, error)
}

type workflowGenerator struct {
	client WebhookPoster
	path   string
	// fallback 工作流不可用时用大模型兜底，可以为 nil
	fallback llm.Completer
	logger   *elog.Component
}

func NewWorkflowGenerator(client WebhookPoster, path string, fallback llm.Completer) Generator {
	return &workflowGenerator{
		client:   client,
		path:     path,
		fallback: fallback,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("FeedbackGenerator")),
	}
}

func (g *workflowGenerator) Review(ctx context.Context, qas []domain.QA) (domain.Review, error) {
	data, err := json.Marshal(qas)
	if err != nil {
		return domain.Review{}, err
	}
	// 工作流要求 response 字段是序列化之后的字符串
	raw, err := g.client.Post(ctx, g.path, map[string]string{"response": string(data)})
	if err == nil {
		var res domain.Review
		res, err = parseReview(raw)
		if err == nil {
			return res, nil
		}
	}
	if g.fallback == nil {
		return domain.Review{}, err
	}
	g.logger.Warn("评估工作流失败，使用大模型兜底", elog.FieldErr(err))
	return g.fromLLM(ctx, string(data))
}

func (g *workflowGenerator) fromLLM(ctx context.Context, transcript string) (domain.Review, error) {
	prompt := "You are an experienced technical interviewer. Review the following interview transcript, " +
		"given as a JSON array of question and answer pairs:\n" + transcript + "\n" +
		"Respond only with a JSON object with the keys \"feedback\" (string), \"knowledge_based_rating\" (string), " +
		"\"suggestions_for_improvement\" (array of strings) and \"overall_score\" (number from 0 to 10)."
	ans, err := g.fallback.Complete(ctx, prompt)
	if err != nil {
		return domain.Review{}, err
	}
	return parseReview(json.RawMessage(llm.CleanJSON(ans)))
}

type reviewPayload struct {
	Feedback                  string      `json:"feedback"`
	KnowledgeBasedRating      string      `json:"knowledge_based_rating"`
	SuggestionsForImprovement suggestions `json:"suggestions_for_improvement"`
	OverallScore              score       `json:"overall_score"`
	// Output 有些工作流会把结果包在 output 里
	Output json.RawMessage `json:"output"`
}

// parseReview 工作流返回的是数组，取第一个元素
func parseReview(raw json.RawMessage) (domain.Review, error) {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err != nil {
			return domain.Review{}, err
		}
		if len(list) == 0 {
			return domain.Review{}, ErrNoReview
		}
		return parseReview(list[0])
	}
	var p reviewPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.Review{}, fmt.Errorf("解析评估结果失败: %w", err)
	}
	if len(p.Output) > 0 {
		var s string
		if json.Unmarshal(p.Output, &s) == nil {
			return parseReview(json.RawMessage(llm.CleanJSON(s)))
		}
		return parseReview(p.Output)
	}
	if p.Feedback == "" {
		return domain.Review{}, ErrNoReview
	}
	return domain.Review{
		Feedback:                  p.Feedback,
		KnowledgeBasedRating:      p.KnowledgeBasedRating,
		SuggestionsForImprovement: p.SuggestionsForImprovement,
		OverallScore:              float64(p.OverallScore),
	}, nil
}

// suggestions 兼容数组和按行分隔的字符串
type suggestions []string

func (s *suggestions) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	res := make([]string, 0, 4)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*•"))
		if line != "" {
			res = append(res, line)
		}
	}
	*s = res
	return nil
}

// score 兼容数字和字符串
type score float64

func (s *score) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*s = score(f)
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return err
	}
	*s = score(f)
	return nil
}
