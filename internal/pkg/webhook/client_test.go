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

package webhook

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Post(t *testing.T) {
	testCases := []struct {
		name      string
		handler   func(calls *atomic.Int32) http.HandlerFunc
		wantBody  string
		wantCalls int32
		wantErr   error
	}{
		{
			name: "成功",
			handler: func(calls *atomic.Int32) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					calls.Add(1)
					body, _ := io.ReadAll(r.Body)
					var req map[string]string
					_ = json.Unmarshal(body, &req)
					if r.URL.Path != "/webhook/interview-questions" ||
						r.Header.Get("Content-Type") != "application/json" ||
						req["jobTitle"] != "Go 工程师" {
						w.WriteHeader(http.StatusBadRequest)
						return
					}
					_, _ = w.Write([]byte(`{"questions":"1. a\n2. b"}`))
				}
			},
			wantBody:  `{"questions":"1. a\n2. b"}`,
			wantCalls: 1,
		},
		{
			name: "服务端错误重试后成功",
			handler: func(calls *atomic.Int32) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					if calls.Add(1) < 3 {
						w.WriteHeader(http.StatusBadGateway)
						return
					}
					_, _ = w.Write([]byte(`[]`))
				}
			},
			wantBody:  `[]`,
			wantCalls: 3,
		},
		{
			name: "客户端错误不重试",
			handler: func(calls *atomic.Int32) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					calls.Add(1)
					w.WriteHeader(http.StatusNotFound)
				}
			},
			wantCalls: 1,
			wantErr:   ErrClientError,
		},
		{
			name: "超过最大重试次数",
			handler: func(calls *atomic.Int32) http.HandlerFunc {
				return func(w http.ResponseWriter, r *http.Request) {
					calls.Add(1)
					w.WriteHeader(http.StatusInternalServerError)
				}
			},
			// 第一次 + 2 次重试
			wantCalls: 3,
			wantErr:   ErrServerError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var calls atomic.Int32
			server := httptest.NewServer(tc.handler(&calls))
			defer server.Close()

			client := NewClient(server.URL+"/", server.Client(), time.Millisecond, 5*time.Millisecond, 2)
			body, err := client.Post(t.Context(), "/webhook/interview-questions", map[string]string{
				"jobTitle":       "Go 工程师",
				"jobDescription": "负责后端开发",
			})
			assert.Equal(t, tc.wantCalls, calls.Load())
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tc.wantBody, string(body))
		})
	}
}
