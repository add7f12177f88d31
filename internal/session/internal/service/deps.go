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
	"time"

	"github.com/ecodeclub/mockinterview/internal/avatar"
	"github.com/ecodeclub/mockinterview/internal/interview"
	"github.com/ecodeclub/mockinterview/internal/session/internal/domain"
)

// Gateway 面试数据的读写，interview.Service 满足这个接口
//
//go:generate mockgen -source=./deps.go -destination=../../mocks/deps.mock.go -package=sessionmocks
type Gateway interface {
	Detail(ctx context.Context, id int64) (interview.Interview, error)
	NextQuestionIndex(ctx context.Context, interviewID int64) (int, error)
	SaveResponse(ctx context.Context, resp interview.Response) (int64, error)
	Complete(ctx context.Context, id int64) error
}

// Avatar 数字人，avatar.Service 满足这个接口
type Avatar interface {
	Request(ctx context.Context, text, sessionID string) (avatar.Result, error)
	// Wait 轮询直到出结果，ctx 取消时立刻返回
	Wait(ctx context.Context, talkID string) avatar.Outcome
}

// Uploader 上传录音录像，返回可以访问的地址
type Uploader interface {
	Upload(ctx context.Context, folder, name string, data []byte) (string, error)
}

// Devices 按照授权获取录制设备
type Devices interface {
	Acquire(ctx context.Context, perms domain.Permissions) (Stream, error)
}

// Stream 已经获取到的设备。一道题一次 Begin / End，
// 会话结束的时候必须 Release
type Stream interface {
	Begin() error
	Append(kind domain.MediaKind, chunk []byte) error
	// End 结束这一道题的录制，返回每种媒体的完整数据，没有数据的不返回
	End() map[domain.MediaKind][]byte
	// Release 释放设备，没有结束的录制直接丢弃
	Release()
}

// SpeechFactory 语音识别，不支持的时候 Deps 里面为 nil
type SpeechFactory interface {
	New(ctx context.Context) (Recognizer, error)
}

type Recognizer interface {
	Feed(text string)
	Transcript() string
	// Stop 停止识别，返回最终的文本
	Stop() string
}

// Finisher 所有题目答完之后触发评估
type Finisher interface {
	Finish(ctx context.Context, interviewID, uid int64) error
}

type Deps struct {
	Gateway  Gateway
	Avatar   Avatar
	Storage  Uploader
	Devices  Devices
	Speech   SpeechFactory
	Finisher Finisher
}

type Config struct {
	// SpeakWindow 数字人说话的时长，不看视频的真实时长
	SpeakWindow time.Duration `yaml:"speakWindow"`
	// FailureDelay 数字人失败之后多久开始录制
	FailureDelay time.Duration `yaml:"failureDelay"`
	// SettleDelay 提交回答之后多久问下一题
	SettleDelay time.Duration `yaml:"settleDelay"`
	// SimulatedCapture 有授权但是拿不到设备时，模拟录制的时长
	SimulatedCapture time.Duration `yaml:"simulatedCapture"`
	// CommitTimeout 上传和提交回答的超时时间
	CommitTimeout time.Duration `yaml:"commitTimeout"`
	// FinishedLinger 会话结束之后在会话表里保留多久，方便前端拿到最终状态
	FinishedLinger time.Duration `yaml:"finishedLinger"`
}

func DefaultConfig() Config {
	return Config{
		SpeakWindow:      6 * time.Second,
		FailureDelay:     2 * time.Second,
		SettleDelay:      2 * time.Second,
		SimulatedCapture: 5 * time.Second,
		CommitTimeout:    time.Minute,
		FinishedLinger:   time.Minute,
	}
}
