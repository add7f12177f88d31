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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	name  string
	ans   string
	err   error
	calls int
}

func (s *stubCompleter) Name() string {
	return s.name
}

func (s *stubCompleter) Complete(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.ans, s.err
}

func TestChain_Complete(t *testing.T) {
	t.Run("第一个失败后使用第二个", func(t *testing.T) {
		first := &stubCompleter{name: "a", err: errors.New("mock err")}
		second := &stubCompleter{name: "b", ans: "ok"}
		third := &stubCompleter{name: "c", ans: "unused"}
		ans, err := NewChain(first, second, third).Complete(t.Context(), "prompt")
		require.NoError(t, err)
		assert.Equal(t, "ok", ans)
		assert.Equal(t, 1, first.calls)
		assert.Equal(t, 1, second.calls)
		assert.Equal(t, 0, third.calls)
	})
	t.Run("全部失败", func(t *testing.T) {
		_, err := NewChain(&stubCompleter{name: "a", err: errors.New("mock err")}).Complete(t.Context(), "prompt")
		assert.ErrorIs(t, err, ErrNoProvider)
	})
	t.Run("没有配置", func(t *testing.T) {
		_, err := NewChain().Complete(t.Context(), "prompt")
		assert.ErrorIs(t, err, ErrNoProvider)
	})
}

func TestCleanJSON(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "代码块包装",
			input: "```json\n{\"overall_score\": 7}\n```",
			want:  `{"overall_score": 7}`,
		},
		{
			name:  "前后有解释文字",
			input: "好的，以下是结果：{\"a\":1} 希望有帮助",
			want:  `{"a":1}`,
		},
		{
			name:  "数组",
			input: "```\n[\"q1\", \"q2\"]\n```",
			want:  `["q1", "q2"]`,
		},
		{
			name:  "纯文本",
			input: "  1. 你好  ",
			want:  "1. 你好",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanJSON(tc.input))
		})
	}
}
