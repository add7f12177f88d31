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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mockinterview/internal/feedback"
	"github.com/ecodeclub/mockinterview/internal/feedback/internal/event"
	"github.com/ecodeclub/mockinterview/internal/feedback/internal/web"
	feedbackmocks "github.com/ecodeclub/mockinterview/internal/feedback/mocks"
	"github.com/ecodeclub/mockinterview/internal/interview"
	"github.com/ecodeclub/mockinterview/internal/test"
	testioc "github.com/ecodeclub/mockinterview/internal/test/ioc"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUID = int64(224001)

func TestFeedbackModule(t *testing.T) {
	suite.Run(t, new(FeedbackModuleTestSuite))
}

type FeedbackModuleTestSuite struct {
	suite.Suite
	db           *egorm.Component
	q            mq.MQ
	interviewSvc interview.Service
	server       *egin.Component
}

func (s *FeedbackModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.q = testioc.InitMQ()
	s.interviewSvc = interview.InitService(s.db)

	ctrl := gomock.NewController(s.T())
	poster := feedbackmocks.NewMockWebhookPoster(ctrl)
	poster.EXPECT().Post(gomock.Any(), "/webhook/review", gomock.Any()).
		Return(json.RawMessage(`[{"feedback":"回答清晰","knowledge_based_rating":"Good","suggestions_for_improvement":["多讲细节"],"overall_score":8}]`), nil).
		AnyTimes()

	m, err := feedback.InitModule(s.interviewSvc, s.q, poster, nil)
	s.NoError(err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	s.server = egin.Load("server").Build()
	s.server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{Uid: testUID}))
	})
	m.Hdl.PrivateRoutes(s.server.Engine)
}

func (s *FeedbackModuleTestSuite) TearDownTest() {
	s.NoError(s.db.Exec("TRUNCATE TABLE `interviews`").Error)
	s.NoError(s.db.Exec("TRUNCATE TABLE `interview_responses`").Error)
	s.NoError(s.db.Exec("TRUNCATE TABLE `interview_feedbacks`").Error)
}

func (s *FeedbackModuleTestSuite) createInterview(ctx context.Context) int64 {
	id, err := s.interviewSvc.Create(ctx, interview.Interview{
		Uid:          testUID,
		RawQuestions: "1. 介绍一下你自己\n2. 说说你做过的项目",
		JobTitle:     "Go 工程师",
	})
	s.NoError(err)
	_, err = s.interviewSvc.SaveResponse(ctx, interview.Response{
		InterviewID:   id,
		QuestionIndex: 0,
		QuestionText:  "介绍一下你自己",
		ResponseText:  "我做了五年后端",
		Uid:           testUID,
	})
	s.NoError(err)
	return id
}

func (s *FeedbackModuleTestSuite) TestGenerate() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	id := s.createInterview(ctx)

	req, err := http.NewRequest(http.MethodPost, "/feedback",
		iox.NewJSONReader(web.GenerateReq{InterviewID: id, UserID: testUID}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	resp := test.ScanJSON[web.GenerateResp](recorder)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.TotalQuestions)
	assert.Equal(t, "回答清晰", resp.Feedback.Feedback)

	fb, err := s.interviewSvc.Feedback(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []interview.QA{
		{Question: "介绍一下你自己", Response: "我做了五年后端"},
		{Question: "说说你做过的项目", Response: "No response provided"},
	}, fb.QuestionsAndResponses)

	// 不存在的面试
	req, err = http.NewRequest(http.MethodPost, "/feedback",
		iox.NewJSONReader(web.GenerateReq{InterviewID: id + 100, UserID: testUID}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder = httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func (s *FeedbackModuleTestSuite) TestConsumeCompletedEvent() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	id := s.createInterview(ctx)

	producer, err := s.q.Producer("interview_completed_events")
	require.NoError(t, err)
	data, err := json.Marshal(event.InterviewCompletedEvent{InterviewID: id, Uid: testUID})
	require.NoError(t, err)
	_, err = producer.Produce(ctx, &mq.Message{Value: data})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		fb, er := s.interviewSvc.Feedback(ctx, id)
		return er == nil && fb.OverallScore == 8
	}, 5*time.Second, 100*time.Millisecond)

	// 重复投递不会再生成一条评估
	_, err = producer.Produce(ctx, &mq.Message{Value: data})
	require.NoError(t, err)
	time.Sleep(time.Second)
	var cnt int64
	require.NoError(t, s.db.WithContext(ctx).Table("interview_feedbacks").
		Where("interview_id = ?", id).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)
}
