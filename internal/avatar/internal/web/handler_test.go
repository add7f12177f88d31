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

package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/mockinterview/internal/avatar/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/avatar/internal/service"
	avatarmocks "github.com/ecodeclub/mockinterview/internal/avatar/mocks"
	"github.com/ecodeclub/mockinterview/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T, mock func(svc *avatarmocks.MockService)) *gin.Engine {
	ctrl := gomock.NewController(t)
	svc := avatarmocks.NewMockService(ctrl)
	mock(svc)
	gin.SetMode(gin.ReleaseMode)
	server := gin.New()
	NewHandler(svc).PrivateRoutes(server)
	return server
}

func TestHandler_CreateTalk(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(svc *avatarmocks.MockService)
		wantCode int
		wantBody string
	}{
		{
			name: "直接返回视频",
			mock: func(svc *avatarmocks.MockService) {
				svc.EXPECT().Request(gomock.Any(), "你好", "s1").Return(domain.Result{ResultURL: "https://d-id/1.mp4", TalkID: "t1"}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"resultUrl":"https://d-id/1.mp4","talkId":"t1"}`,
		},
		{
			name: "返回任务",
			mock: func(svc *avatarmocks.MockService) {
				svc.EXPECT().Request(gomock.Any(), "你好", "s1").Return(domain.Result{TalkID: "t2"}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"talkId":"t2"}`,
		},
		{
			name: "额度不足",
			mock: func(svc *avatarmocks.MockService) {
				svc.EXPECT().Request(gomock.Any(), "你好", "s1").Return(domain.Result{}, service.ErrInsufficientCredits)
			},
			wantCode: http.StatusPaymentRequired,
			wantBody: `{"error":"Insufficient credits"}`,
		},
		{
			name: "上游错误",
			mock: func(svc *avatarmocks.MockService) {
				svc.EXPECT().Request(gomock.Any(), "你好", "s1").Return(domain.Result{}, errors.New("mock error"))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Failed to generate video"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newServer(t, tc.mock)
			req, err := http.NewRequest(http.MethodPost, "/avatar/talks", iox.NewJSONReader(CreateTalkReq{Text: "你好", SessionID: "s1"}))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.JSONEq(t, tc.wantBody, recorder.Body.String())
		})
	}
}

func TestHandler_GetTalk(t *testing.T) {
	server := newServer(t, func(svc *avatarmocks.MockService) {
		svc.EXPECT().Status(gomock.Any(), "t1").Return(domain.Talk{
			ID: "t1", Status: domain.TalkStatusDone, ResultURL: "https://d-id/1.mp4", Duration: 4, CreatedAt: "2024-01-01",
		}, nil)
	})
	req, err := http.NewRequest(http.MethodGet, "/avatar/talks?talkId=t1", nil)
	require.NoError(t, err)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, TalkVO{
		TalkID: "t1", Status: "done", ResultURL: "https://d-id/1.mp4", Duration: 4, CreatedAt: "2024-01-01",
	}, test.ScanJSON[TalkVO](recorder))

	req, err = http.NewRequest(http.MethodGet, "/avatar/talks", nil)
	require.NoError(t, err)
	recorder = httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
