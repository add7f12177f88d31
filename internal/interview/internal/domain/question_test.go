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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestions(t *testing.T) {
	testCases := []struct {
		name string
		raw  any
		want []Question
	}{
		{
			name: "带编号的文本",
			raw:  "1. 介绍一下你自己\n2.  你为什么想加入我们？\n\n3. 讲讲你做过最难的项目",
			want: []Question{
				{Index: 0, Text: "介绍一下你自己"},
				{Index: 1, Text: "你为什么想加入我们？"},
				{Index: 2, Text: "讲讲你做过最难的项目"},
			},
		},
		{
			name: "短横线前缀和空白行",
			raw:  "- What is a goroutine?\n   \n-   Explain channels\r\n",
			want: []Question{
				{Index: 0, Text: "What is a goroutine?"},
				{Index: 1, Text: "Explain channels"},
			},
		},
		{
			name: "字符串列表",
			raw:  []string{"a", "  ", "b"},
			want: []Question{
				{Index: 0, Text: "a"},
				{Index: 1, Text: "b"},
			},
		},
		{
			name: "对象列表",
			raw: []any{
				map[string]any{"question": "q1"},
				map[string]any{"text": "q2"},
				map[string]any{"other": "x"},
				"q3",
				12,
			},
			want: []Question{
				{Index: 0, Text: "q1"},
				{Index: 1, Text: "q2"},
				{Index: 2, Text: "q3"},
			},
		},
		{
			name: "nil",
			raw:  nil,
			want: []Question{},
		},
		{
			name: "全部为空",
			raw:  "\n  \n1. \n- ",
			want: []Question{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseQuestions(tc.raw))
		})
	}
}

func TestParseQuestions_FromJSONColumn(t *testing.T) {
	var raw any
	err := json.Unmarshal([]byte(`[{"question":"q1"},{"text":""},"q2"]`), &raw)
	require.NoError(t, err)
	qs := ParseQuestions(raw)
	for i, q := range qs {
		assert.Equal(t, i, q.Index)
		assert.NotEmpty(t, q.Text)
	}
	assert.Equal(t, []Question{{Index: 0, Text: "q1"}, {Index: 1, Text: "q2"}}, qs)
}

func TestSummary_Completed(t *testing.T) {
	testCases := []struct {
		name          string
		summary       Summary
		wantCompleted bool
		wantAttended  bool
	}{
		{
			name:    "没有回答",
			summary: Summary{QuestionCount: 3},
		},
		{
			name:          "全部回答",
			summary:       Summary{QuestionCount: 3, ResponseCount: 3},
			wantCompleted: true,
		},
		{
			name:          "有评估",
			summary:       Summary{QuestionCount: 3, ResponseCount: 1, HasFeedback: true},
			wantCompleted: true,
			wantAttended:  true,
		},
		{
			name:          "已经标记完成",
			summary:       Summary{Interview: Interview{Status: StatusCompleted}, QuestionCount: 3},
			wantCompleted: true,
		},
		{
			name:    "没有题目",
			summary: Summary{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantCompleted, tc.summary.Completed())
			assert.Equal(t, tc.wantAttended, tc.summary.Attended())
		})
	}
}

func TestDedup(t *testing.T) {
	res := Dedup([]Response{
		{ID: 1, QuestionIndex: 0},
		{ID: 2, QuestionIndex: 1},
		{ID: 5, QuestionIndex: 1},
		{ID: 3, QuestionIndex: 2},
	})
	assert.Equal(t, []Response{
		{ID: 1, QuestionIndex: 0},
		{ID: 2, QuestionIndex: 1},
		{ID: 3, QuestionIndex: 2},
	}, res)
}
