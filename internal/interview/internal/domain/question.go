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

package domain

import (
	"regexp"
	"strings"
)

var (
	numberedPrefix = regexp.MustCompile(`^\d+\.\s*`)
	dashPrefix     = regexp.MustCompile(`^-\s*`)
)

type Question struct {
	Index int
	Text  string
}

// ParseQuestions 把出题结果解析成题目列表。
// 文本按行拆分并去掉 "1. "、"- " 这种前缀；列表里的元素可以是字符串，也可以是带 question 或者 text 字段的对象。
// 空题目会被丢弃，下标从 0 开始连续。
func ParseQuestions(raw any) []Question {
	var texts []string
	switch val := raw.(type) {
	case string:
		texts = splitLines(val)
	case []string:
		texts = val
	case []any:
		texts = make([]string, 0, len(val))
		for _, item := range val {
			texts = append(texts, itemText(item))
		}
	case []map[string]any:
		texts = make([]string, 0, len(val))
		for _, item := range val {
			texts = append(texts, itemText(item))
		}
	}
	res := make([]Question, 0, len(texts))
	for _, t := range texts {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		res = append(res, Question{Index: len(res), Text: t})
	}
	return res
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		line = numberedPrefix.ReplaceAllString(line, "")
		line = dashPrefix.ReplaceAllString(line, "")
		lines[i] = line
	}
	return lines
}

func itemText(item any) string {
	switch v := item.(type) {
	case string:
		return v
	case map[string]any:
		if q, ok := v["question"].(string); ok && strings.TrimSpace(q) != "" {
			return q
		}
		if t, ok := v["text"].(string); ok {
			return t
		}
	}
	return ""
}
