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
	"fmt"
	"strings"

	"github.com/ecodeclub/mockinterview/internal/interview/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/pkg/llm"
	"github.com/gotomicro/ego/core/elog"
)

type SourceRequest struct {
	// FileURL 简历地址，为空时按岗位出题
	FileURL        string
	JobTitle       string
	JobDescription string
}

type WebhookPoster interface {
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
}

// QuestionSource 出题。返回的内容可能是文本，也可能是列表，交给 domain.ParseQuestions 解析
//
//go:generate mockgen -source=./source.go -destination=../../mocks/source.mock.go -package=interviewmocks QuestionSource
type QuestionSource interface {
	Questions(ctx context.Context, req SourceRequest) (any, error)
}

type workflowQuestionSource struct {
	client WebhookPoster
	path   string
	// fallback 工作流不可用时用大模型兜底，可以为 nil
	fallback llm.Completer
	logger   *elog.Component
}

func NewWorkflowQuestionSource(client WebhookPoster, path string, fallback llm.Completer) QuestionSource {
	return &workflowQuestionSource{
		client:   client,
		path:     path,
		fallback: fallback,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("QuestionSource")),
	}
}

func (s *workflowQuestionSource) Questions(ctx context.Context, req SourceRequest) (any, error) {
	var body any
	if req.FileURL != "" {
		body = map[string]string{"fileUrl": req.FileURL}
	} else {
		body = map[string]string{
			"jobDescription": req.JobDescription,
			"jobTitle":       req.JobTitle,
		}
	}
	raw, err := s.client.Post(ctx, s.path, body)
	if err == nil {
		payload, er := decodePayload(raw)
		if er == nil && len(domain.ParseQuestions(payload)) > 0 {
			return payload, nil
		}
		err = fmt.Errorf("无法解析出题结果: %s", raw)
	}
	if s.fallback == nil {
		return nil, err
	}
	s.logger.Warn("出题工作流失败，使用大模型兜底", elog.FieldErr(err))
	return s.fromLLM(ctx, req)
}

func (s *workflowQuestionSource) fromLLM(ctx context.Context, req SourceRequest) (any, error) {
	var sb strings.Builder
	sb.WriteString("You are an experienced technical interviewer. ")
	if req.FileURL != "" {
		sb.WriteString("Generate 5 interview questions for the candidate whose resume is available at: ")
		sb.WriteString(req.FileURL)
	} else {
		sb.WriteString("Generate 5 interview questions for the position \"")
		sb.WriteString(req.JobTitle)
		sb.WriteString("\" with the following job description:\n")
		sb.WriteString(req.JobDescription)
	}
	sb.WriteString("\nReturn only a numbered list, one question per line, without any other text.")
	ans, err := s.fallback.Complete(ctx, sb.String())
	if err != nil {
		return nil, err
	}
	// 有些模型不听话，会返回 JSON 数组
	if cleaned := llm.CleanJSON(ans); strings.HasPrefix(cleaned, "[") {
		var list []any
		if json.Unmarshal([]byte(cleaned), &list) == nil {
			return list, nil
		}
	}
	return ans, nil
}

// decodePayload 剥掉工作流常见的外层包装：{questions: ...}、{output: ...}、[{...}]，以及被序列化成字符串的 JSON
func decodePayload(raw json.RawMessage) (any, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return unwrap(v, 0), nil
}

func unwrap(v any, depth int) any {
	const maxDepth = 5
	if depth >= maxDepth {
		return v
	}
	switch val := v.(type) {
	case map[string]any:
		for _, key := range []string{"questions", "question", "output", "text", "data"} {
			if inner, ok := val[key]; ok {
				return unwrap(inner, depth+1)
			}
		}
	case []any:
		if len(val) == 1 {
			if m, ok := val[0].(map[string]any); ok {
				if _, isQuestion := m["question"].(string); !isQuestion {
					return unwrap(m, depth+1)
				}
			}
		}
	case string:
		trimmed := strings.TrimSpace(val)
		if strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "{") {
			var inner any
			if json.Unmarshal([]byte(trimmed), &inner) == nil {
				return unwrap(inner, depth+1)
			}
		}
	}
	return v
}
