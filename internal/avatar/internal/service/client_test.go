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
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ecodeclub/mockinterview/internal/avatar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDIDClient_CreateTalk(t *testing.T) {
	testCases := []struct {
		name     string
		status   int
		body     string
		wantTalk domain.Talk
		wantErr  error
	}{
		{
			name:     "创建成功",
			status:   http.StatusCreated,
			body:     `{"id":"tlk_1","status":"created","created_at":"2024-01-01T00:00:00Z"}`,
			wantTalk: domain.Talk{ID: "tlk_1", Status: domain.TalkStatusCreated, CreatedAt: "2024-01-01T00:00:00Z"},
		},
		{
			name:    "额度不足",
			status:  http.StatusPaymentRequired,
			body:    `{"kind":"InsufficientCreditsError","description":"not enough credits"}`,
			wantErr: ErrInsufficientCredits,
		},
		{
			name:    "其他错误",
			status:  http.StatusBadRequest,
			body:    `{"kind":"ValidationError"}`,
			wantErr: ErrUpstream,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/talks", r.URL.Path)
				assert.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte("key:")), r.Header.Get("Authorization"))
				data, _ := io.ReadAll(r.Body)
				var req map[string]any
				require.NoError(t, json.Unmarshal(data, &req))
				assert.Equal(t, "https://img/avatar.jpg", req["source_url"])
				assert.Equal(t, map[string]any{"type": "text", "input": "你好", "subtitles": false}, req["script"])
				assert.Equal(t, map[string]any{"result_format": "mp4", "fluent": true, "stitch": true}, req["config"])
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			c := NewDIDClient(server.URL, "key", "https://img/avatar.jpg", server.Client(), time.Millisecond, time.Millisecond, 2)
			talk, err := c.CreateTalk(t.Context(), "你好")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTalk, talk)
		})
	}
}

func TestDIDClient_GetTalk(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/talks/tlk_1", r.URL.Path)
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"id":"tlk_1","status":"done","result_url":"https://d-id/1.mp4","duration":3.5}`))
	}))
	defer server.Close()

	c := NewDIDClient(server.URL, "key", "", server.Client(), time.Millisecond, time.Millisecond, 2)
	talk, err := c.GetTalk(t.Context(), "tlk_1")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, domain.Talk{
		ID:        "tlk_1",
		Status:    domain.TalkStatusDone,
		ResultURL: "https://d-id/1.mp4",
		Duration:  3.5,
	}, talk)
}
