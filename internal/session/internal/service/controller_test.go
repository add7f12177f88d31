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

package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/ecodeclub/mockinterview/internal/avatar"
	"github.com/ecodeclub/mockinterview/internal/interview"
	"github.com/ecodeclub/mockinterview/internal/session/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/session/internal/service"
	sessionmocks "github.com/ecodeclub/mockinterview/internal/session/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	interviewID = int64(1)
	uid         = int64(9)
)

type mocks struct {
	gateway  *sessionmocks.MockGateway
	avatar   *sessionmocks.MockAvatar
	storage  *sessionmocks.MockUploader
	devices  *sessionmocks.MockDevices
	finisher *sessionmocks.MockFinisher
}

func newMocks(t *testing.T) mocks {
	ctrl := gomock.NewController(t)
	return mocks{
		gateway:  sessionmocks.NewMockGateway(ctrl),
		avatar:   sessionmocks.NewMockAvatar(ctrl),
		storage:  sessionmocks.NewMockUploader(ctrl),
		devices:  sessionmocks.NewMockDevices(ctrl),
		finisher: sessionmocks.NewMockFinisher(ctrl),
	}
}

func (m mocks) deps() service.Deps {
	return service.Deps{
		Gateway:  m.gateway,
		Avatar:   m.avatar,
		Storage:  m.storage,
		Devices:  m.devices,
		Speech:   service.TranscriptSpeech{},
		Finisher: m.finisher,
	}
}

func (m mocks) expectInterview(questions string, next int) {
	m.gateway.EXPECT().Detail(gomock.Any(), interviewID).Return(interview.Interview{
		ID:           interviewID,
		Uid:          uid,
		RawQuestions: questions,
	}, nil)
	m.gateway.EXPECT().NextQuestionIndex(gomock.Any(), interviewID).Return(next, nil)
}

func (m mocks) expectFinish(finishErr error) {
	m.finisher.EXPECT().Finish(gomock.Any(), interviewID, uid).Return(finishErr)
	m.gateway.EXPECT().Complete(gomock.Any(), interviewID).Return(nil)
}

func testConfig() service.Config {
	return service.Config{
		SpeakWindow:      20 * time.Millisecond,
		FailureDelay:     10 * time.Millisecond,
		SettleDelay:      10 * time.Millisecond,
		SimulatedCapture: 30 * time.Millisecond,
		CommitTimeout:    time.Second,
	}
}

func waitState(t *testing.T, c *service.Controller, state domain.State) domain.Snapshot {
	t.Helper()
	require.Eventually(t, func() bool {
		return c.Snapshot().State == state
	}, 2*time.Second, 5*time.Millisecond, "等待状态 %s，当前 %s", state, c.Snapshot().State)
	return c.Snapshot()
}

func TestController_SingleQuestionTextOnly(t *testing.T) {
	m := newMocks(t)
	m.expectInterview("1. Tell me about yourself", 0)
	m.avatar.EXPECT().Request(gomock.Any(), "Tell me about yourself", gomock.Any()).
		Return(avatar.Result{ResultURL: "https://d-id/talk_1.mp4"}, nil)
	m.gateway.EXPECT().SaveResponse(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, resp interview.Response) (int64, error) {
			assert.Equal(t, interviewID, resp.InterviewID)
			assert.Equal(t, uid, resp.Uid)
			assert.Equal(t, 0, resp.QuestionIndex)
			assert.Equal(t, "Tell me about yourself", resp.QuestionText)
			assert.Equal(t, "I have 5 years experience", resp.ResponseText)
			assert.Empty(t, resp.AudioURL)
			assert.Empty(t, resp.VideoURL)
			assert.True(t, resp.Timestamp > 0)
			return 1, nil
		}).Times(1)
	m.expectFinish(nil)

	ctx := context.Background()
	c := service.New(testConfig(), m.deps(), interviewID, uid)
	require.NoError(t, c.Start(ctx))
	snap := c.Snapshot()
	assert.Equal(t, domain.StateAwaitingPermissions, snap.State)
	assert.Equal(t, 1, snap.Total)

	require.NoError(t, c.GrantPermissions(ctx, domain.Permissions{}))
	snap = waitState(t, c, domain.StateRecording)
	assert.Equal(t, "https://d-id/talk_1.mp4", snap.AvatarURL)
	assert.False(t, snap.Degraded)

	require.NoError(t, c.Stop(ctx, "  I have 5 years experience "))
	snap = waitState(t, c, domain.StateComplete)
	assert.Equal(t, "/interview/1/summary", snap.Redirect)
	assert.Equal(t, 1, snap.Index)
	assert.False(t, snap.Degraded)
	<-c.Done()
}

func TestController_AvatarTimeout(t *testing.T) {
	m := newMocks(t)
	m.expectInterview("1. Q1\n2. Q2", 0)
	m.avatar.EXPECT().Request(gomock.Any(), "Q1", gomock.Any()).Return(avatar.Result{TalkID: "tlk_1"}, nil)
	m.avatar.EXPECT().Wait(gomock.Any(), "tlk_1").Return(avatar.Outcome{Kind: avatar.OutcomeTimeout, Attempts: 15})

	ctx := context.Background()
	c := service.New(testConfig(), m.deps(), interviewID, uid)
	require.NoError(t, c.Start(ctx))
	require.NoError(t, c.GrantPermissions(ctx, domain.Permissions{}))
	snap := waitState(t, c, domain.StateRecording)
	assert.True(t, snap.Degraded)
	assert.Contains(t, snap.AvatarError, "timeout")
	assert.Empty(t, snap.AvatarURL)
	assert.Equal(t, "Q1", snap.Question)

	require.NoError(t, c.Leave(ctx))
	assert.Equal(t, domain.StateLeft, c.Snapshot().State)
	assert.Equal(t, "/", c.Snapshot().Redirect)
}

func TestController_AvatarErrorUsesFailureDelay(t *testing.T) {
	m := newMocks(t)
	m.expectInterview("1. Q1", 0)
	m.avatar.EXPECT().Request(gomock.Any(), "Q1", gomock.Any()).Return(avatar.Result{TalkID: "tlk_1"}, nil)
	m.avatar.EXPECT().Wait(gomock.Any(), "tlk_1").Return(avatar.Outcome{Kind: avatar.OutcomeError, Attempts: 3})

	cfg := testConfig()
	// 说话窗口很长，能在短时间内进入录制说明走的是失败的分支
	cfg.SpeakWindow = time.Minute
	cfg.FailureDelay = 50 * time.Millisecond
	ctx := context.Background()
	c := service.New(cfg, m.deps(), interviewID, uid)
	require.NoError(t, c.Start(ctx))
	start := time.Now()
	require.NoError(t, c.GrantPermissions(ctx, domain.Permissions{}))
	snap := waitState(t, c, domain.StateRecording)
	assert.GreaterOrEqual(t, time.Since(start), cfg.FailureDelay)
	assert.True(t, snap.Degraded)
	assert.Contains(t, snap.AvatarError, "error")
	require.NoError(t, c.Leave(ctx))
}

func TestController_InsufficientCredits(t *testing.T) {
	m := newMocks(t)
	m.expectInterview("1. Q1", 0)
	m.avatar.EXPECT().Request(gomock.Any(), "Q1", gomock.Any()).Return(avatar.Result{}, avatar.ErrInsufficientCredits)

	ctx := context.Background()
	c := service.New(testConfig(), m.deps(), interviewID, uid)
	require.NoError(t, c.Start(ctx))
	require.NoError(t, c.GrantPermissions(ctx, domain.Permissions{}))
	snap := waitState(t, c, domain.StateRecording)
	assert.True(t, snap.Degraded)
	assert.Equal(t, avatar.ErrInsufficientCredits.Error(), snap.AvatarError)
	require.NoError(t, c.Leave(ctx))
}

func TestController_ResumeWithMedia(t *testing.T) {
	m := newMocks(t)
	m.expectInterview("1. Q1\n2. Q2\n3. Q3", 1)
	m.avatar.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(avatar.Result{ResultURL: "https://d-id/talk.mp4"}, nil).Times(2)
	m.devices.EXPECT().Acquire(gomock.Any(), domain.Permissions{Audio: true, Video: true}).
		DoAndReturn(service.NewBufferDevices(0).Acquire)

	namePattern := regexp.MustCompile(`^audio_\d+_response\.webm$`)
	m.storage.EXPECT().Upload(gomock.Any(), "interviews/1", gomock.Any(), []byte("aaa")).
		DoAndReturn(func(_ context.Context, folder, name string, _ []byte) (string, error) {
			assert.Regexp(t, namePattern, name)
			return "https://ik.imagekit.io/demo/" + folder + "/" + name, nil
		})
	m.storage.EXPECT().Upload(gomock.Any(), "interviews/1", gomock.Any(), []byte("vvv")).
		Return("", errors.New("upload error"))
	gomock.InOrder(
		m.gateway.EXPECT().SaveResponse(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, resp interview.Response) (int64, error) {
				assert.Equal(t, 1, resp.QuestionIndex)
				assert.Equal(t, "Q2", resp.QuestionText)
				// 语音识别的结果优先
				assert.Equal(t, "hello world", resp.ResponseText)
				assert.Contains(t, resp.AudioURL, "interviews/1/audio_")
				assert.Empty(t, resp.VideoURL)
				return 2, nil
			}),
		m.gateway.EXPECT().SaveResponse(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, resp interview.Response) (int64, error) {
				assert.Equal(t, 2, resp.QuestionIndex)
				assert.Equal(t, "typed", resp.ResponseText)
				return 0, errors.New("db error")
			}),
	)
	m.expectFinish(errors.New("mq error"))

	ctx := context.Background()
	c := service.New(testConfig(), m.deps(), interviewID, uid)
	require.NoError(t, c.Start(ctx))
	snap := c.Snapshot()
	assert.Equal(t, 1, snap.Index)
	assert.Equal(t, "Q2", snap.Question)

	require.NoError(t, c.GrantPermissions(ctx, domain.Permissions{Audio: true, Video: true}))
	waitState(t, c, domain.StateRecording)
	require.NoError(t, c.AppendMedia(ctx, domain.MediaAudio, []byte("aa")))
	require.NoError(t, c.AppendMedia(ctx, domain.MediaAudio, []byte("a")))
	require.NoError(t, c.AppendMedia(ctx, domain.MediaVideo, []byte("vvv")))
	require.NoError(t, c.AppendTranscript(ctx, "hello"))
	require.NoError(t, c.AppendTranscript(ctx, "world"))
	assert.Equal(t, "hello world", c.Snapshot().Transcript)
	require.NoError(t, c.Stop(ctx, "ignored"))

	// 上传失败不影响进入下一题
	snap = waitState(t, c, domain.StateRecording)
	assert.Equal(t, 2, snap.Index)
	assert.Equal(t, "Q3", snap.Question)
	require.NoError(t, c.Stop(ctx, " typed "))

	// 保存失败也会前进，评估失败也能结束
	snap = waitState(t, c, domain.StateComplete)
	assert.Equal(t, 3, snap.Index)
	assert.True(t, snap.Degraded)
	assert.Contains(t, snap.LastError, "mq error")
	assert.Equal(t, "/interview/1/summary", snap.Redirect)
}

func TestController_ResumeAfterLastQuestion(t *testing.T) {
	detail := func(status interview.Status) interview.Interview {
		return interview.Interview{
			ID:           interviewID,
			Uid:          uid,
			RawQuestions: "1. Q1\n2. Q2",
			Status:       status,
		}
	}
	testCases := []struct {
		name string
		mock func(m mocks)
	}{
		{
			name: "已经完成的面试不再触发评估",
			mock: func(m mocks) {
				m.gateway.EXPECT().Detail(gomock.Any(), interviewID).
					Return(detail(interview.StatusCompleted), nil).Times(3)
				m.finisher.EXPECT().Finish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				m.gateway.EXPECT().Complete(gomock.Any(), gomock.Any()).Times(0)
			},
		},
		{
			// 只有第一次需要收尾，之后面试已经是完成状态
			name: "答完了但是没有收尾",
			mock: func(m mocks) {
				m.gateway.EXPECT().Detail(gomock.Any(), interviewID).
					Return(detail(interview.StatusPending), nil).Times(1)
				m.gateway.EXPECT().Detail(gomock.Any(), interviewID).
					Return(detail(interview.StatusCompleted), nil).Times(2)
				m.expectFinish(nil)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newMocks(t)
			m.gateway.EXPECT().NextQuestionIndex(gomock.Any(), interviewID).Return(2, nil).Times(3)
			tc.mock(m)

			// 多次打开同一场面试
			for i := 0; i < 3; i++ {
				c := service.New(testConfig(), m.deps(), interviewID, uid)
				require.NoError(t, c.Start(context.Background()))
				snap := waitState(t, c, domain.StateComplete)
				assert.Equal(t, "/interview/1/summary", snap.Redirect)
				assert.False(t, snap.Degraded)
				<-c.Done()
			}
		})
	}
}

func TestController_StartFailures(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m mocks)
		wantErr error
	}{
		{
			name: "没有题目",
			mock: func(m mocks) {
				m.gateway.EXPECT().Detail(gomock.Any(), interviewID).
					Return(interview.Interview{ID: interviewID, Uid: uid, RawQuestions: "\n  \n"}, nil)
				m.gateway.EXPECT().NextQuestionIndex(gomock.Any(), interviewID).Return(0, nil)
			},
			wantErr: service.ErrNoQuestions,
		},
		{
			name: "别人的面试",
			mock: func(m mocks) {
				m.gateway.EXPECT().Detail(gomock.Any(), interviewID).
					Return(interview.Interview{ID: interviewID, Uid: uid + 1, RawQuestions: "1. Q1"}, nil)
			},
			wantErr: service.ErrInterviewNotFound,
		},
		{
			name: "面试不存在",
			mock: func(m mocks) {
				m.gateway.EXPECT().Detail(gomock.Any(), interviewID).
					Return(interview.Interview{}, interview.ErrInterviewNotFound)
			},
			wantErr: service.ErrInterviewNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newMocks(t)
			tc.mock(m)
			c := service.New(testConfig(), m.deps(), interviewID, uid)
			err := c.Start(context.Background())
			assert.ErrorIs(t, err, tc.wantErr)
			snap := waitState(t, c, domain.StateComplete)
			assert.NotEmpty(t, snap.LastError)
			assert.Empty(t, snap.Redirect)
			assert.ErrorIs(t, c.GrantPermissions(context.Background(), domain.Permissions{}), service.ErrSessionClosed)
		})
	}
}

func TestController_LeaveWhilePolling(t *testing.T) {
	m := newMocks(t)
	m.expectInterview("1. Q1", 0)
	stream := sessionmocks.NewMockStream(gomock.NewController(t))
	stream.EXPECT().Release().Times(1)
	m.devices.EXPECT().Acquire(gomock.Any(), domain.Permissions{Audio: true}).Return(stream, nil)
	m.avatar.EXPECT().Request(gomock.Any(), "Q1", gomock.Any()).Return(avatar.Result{TalkID: "tlk_1"}, nil)
	canceled := make(chan struct{})
	m.avatar.EXPECT().Wait(gomock.Any(), "tlk_1").
		DoAndReturn(func(ctx context.Context, _ string) avatar.Outcome {
			<-ctx.Done()
			close(canceled)
			return avatar.Outcome{Kind: avatar.OutcomeCanceled, Err: ctx.Err()}
		})

	ctx := context.Background()
	c := service.New(testConfig(), m.deps(), interviewID, uid)
	require.NoError(t, c.Start(ctx))
	require.NoError(t, c.GrantPermissions(ctx, domain.Permissions{Audio: true}))
	waitState(t, c, domain.StateAvatarSpeaking)

	require.NoError(t, c.Leave(ctx))
	select {
	case <-canceled:
	case <-time.After(time.Second):
		t.Fatal("轮询没有停止")
	}
	<-c.Done()
	snap := c.Snapshot()
	assert.Equal(t, domain.StateLeft, snap.State)
	assert.Equal(t, "/", snap.Redirect)

	// 重复离开没有副作用
	require.NoError(t, c.Leave(ctx))
	assert.ErrorIs(t, c.Stop(ctx, "late"), service.ErrSessionClosed)
}

func TestController_LeaveDiscardsRecording(t *testing.T) {
	m := newMocks(t)
	m.expectInterview("1. Q1", 0)
	m.devices.EXPECT().Acquire(gomock.Any(), gomock.Any()).DoAndReturn(service.NewBufferDevices(0).Acquire)
	m.avatar.EXPECT().Request(gomock.Any(), "Q1", gomock.Any()).Return(avatar.Result{ResultURL: "https://d-id/1.mp4"}, nil)

	ctx := context.Background()
	c := service.New(testConfig(), m.deps(), interviewID, uid)
	require.NoError(t, c.Start(ctx))
	require.NoError(t, c.GrantPermissions(ctx, domain.Permissions{Audio: true, Video: true}))
	waitState(t, c, domain.StateRecording)
	require.NoError(t, c.AppendMedia(ctx, domain.MediaVideo, []byte("vvv")))
	require.NoError(t, c.AppendTranscript(ctx, "half an answer"))
	// 没有 SaveResponse 和 Upload 的预期，调用了就会失败
	require.NoError(t, c.Leave(ctx))
	<-c.Done()
	assert.Equal(t, domain.StateLeft, c.Snapshot().State)
}

func TestController_SimulatedCapture(t *testing.T) {
	m := newMocks(t)
	m.expectInterview("1. Q1", 0)
	m.devices.EXPECT().Acquire(gomock.Any(), domain.Permissions{Video: true}).Return(nil, errors.New("camera busy"))
	m.avatar.EXPECT().Request(gomock.Any(), "Q1", gomock.Any()).Return(avatar.Result{ResultURL: "https://d-id/1.mp4"}, nil)
	m.gateway.EXPECT().SaveResponse(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, resp interview.Response) (int64, error) {
			assert.Equal(t, "typed answer", resp.ResponseText)
			assert.Empty(t, resp.VideoURL)
			return 1, nil
		})
	m.expectFinish(nil)

	ctx := context.Background()
	cfg := testConfig()
	cfg.SimulatedCapture = 100 * time.Millisecond
	c := service.New(cfg, m.deps(), interviewID, uid)
	require.NoError(t, c.Start(ctx))
	require.NoError(t, c.GrantPermissions(ctx, domain.Permissions{Video: true}))
	waitState(t, c, domain.StateRecording)
	require.NoError(t, c.UpdateDraft(ctx, "typed answer"))
	// 模拟录制到时间后自动提交
	waitState(t, c, domain.StateComplete)
}

func TestController_InvalidState(t *testing.T) {
	m := newMocks(t)
	m.expectInterview("1. Q1", 0)
	m.avatar.EXPECT().Request(gomock.Any(), "Q1", gomock.Any()).
		Return(avatar.Result{ResultURL: "https://d-id/1.mp4"}, nil).AnyTimes()

	ctx := context.Background()
	cfg := testConfig()
	cfg.SpeakWindow = time.Minute
	c := service.New(cfg, m.deps(), interviewID, uid)
	assert.ErrorIs(t, c.Stop(ctx, "too early"), service.ErrInvalidState)
	require.NoError(t, c.Start(ctx))
	assert.ErrorIs(t, c.Start(ctx), service.ErrAlreadyStarted)
	require.NoError(t, c.GrantPermissions(ctx, domain.Permissions{}))
	assert.ErrorIs(t, c.GrantPermissions(ctx, domain.Permissions{}), service.ErrInvalidState)
	waitState(t, c, domain.StateAvatarSpeaking)
	assert.ErrorIs(t, c.Stop(ctx, "still speaking"), service.ErrInvalidState)
	// 不在录制的时候忽略
	assert.NoError(t, c.AppendTranscript(ctx, "ignored"))
	assert.ErrorIs(t, c.AppendMedia(ctx, domain.MediaKind("image"), []byte("x")), service.ErrInvalidMediaKind)
	require.NoError(t, c.Leave(ctx))
}

func TestController_Subscribe(t *testing.T) {
	m := newMocks(t)
	m.expectInterview("1. Q1", 0)
	m.avatar.EXPECT().Request(gomock.Any(), "Q1", gomock.Any()).Return(avatar.Result{ResultURL: "https://d-id/1.mp4"}, nil)
	m.gateway.EXPECT().SaveResponse(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	m.expectFinish(nil)

	ctx := context.Background()
	c := service.New(testConfig(), m.deps(), interviewID, uid)
	ch, cancel := c.Subscribe()
	defer cancel()

	states := make(chan []domain.State, 1)
	go func() {
		var res []domain.State
		for snap := range ch {
			if len(res) == 0 || res[len(res)-1] != snap.State {
				res = append(res, snap.State)
			}
		}
		states <- res
	}()

	require.NoError(t, c.Start(ctx))
	require.NoError(t, c.GrantPermissions(ctx, domain.Permissions{}))
	waitState(t, c, domain.StateRecording)
	require.NoError(t, c.Stop(ctx, "answer"))

	select {
	case res := <-states:
		assert.Equal(t, []domain.State{
			domain.StateLoading,
			domain.StateAwaitingPermissions,
			domain.StateAvatarSpeaking,
			domain.StateRecording,
			domain.StateUploading,
			domain.StateFinalizing,
			domain.StateComplete,
		}, res)
	case <-time.After(2 * time.Second):
		t.Fatal("会话没有结束")
	}

	// 结束之后订阅，拿到最后的状态然后关闭
	late, _ := c.Subscribe()
	snap, ok := <-late
	assert.True(t, ok)
	assert.Equal(t, domain.StateComplete, snap.State)
	_, ok = <-late
	assert.False(t, ok)
}

func TestController_AvatarFinished(t *testing.T) {
	m := newMocks(t)
	m.expectInterview("1. Q1", 0)
	release := make(chan struct{})
	m.avatar.EXPECT().Request(gomock.Any(), "Q1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, text, sessionID string) (avatar.Result, error) {
			<-release
			return avatar.Result{ResultURL: "https://d-id/1.mp4"}, nil
		})

	cfg := testConfig()
	// 窗口足够长，进入录制只能靠前端通知
	cfg.SpeakWindow = time.Minute
	ctx := context.Background()
	c := service.New(cfg, m.deps(), interviewID, uid)
	require.NoError(t, c.Start(ctx))
	require.NoError(t, c.GrantPermissions(ctx, domain.Permissions{}))
	waitState(t, c, domain.StateAvatarSpeaking)

	// 视频还没有生成，忽略
	require.NoError(t, c.AvatarFinished(ctx))
	assert.Equal(t, domain.StateAvatarSpeaking, c.Snapshot().State)

	close(release)
	require.Eventually(t, func() bool {
		return c.Snapshot().AvatarURL != ""
	}, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, c.AvatarFinished(ctx))
	assert.Equal(t, domain.StateRecording, c.Snapshot().State)

	require.NoError(t, c.Leave(ctx))
	<-c.Done()
}
