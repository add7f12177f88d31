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

type TalkStatus string

const (
	TalkStatusCreated  TalkStatus = "created"
	TalkStatusStarted  TalkStatus = "started"
	TalkStatusDone     TalkStatus = "done"
	TalkStatusError    TalkStatus = "error"
	TalkStatusRejected TalkStatus = "rejected"
)

func (s TalkStatus) String() string {
	return string(s)
}

// Failed 渲染失败，不会再有结果
func (s TalkStatus) Failed() bool {
	return s == TalkStatusError || s == TalkStatusRejected
}

// Talk 一段数字人说话视频的渲染任务
type Talk struct {
	ID        string
	Status    TalkStatus
	ResultURL string
	// Duration 视频时长，秒
	Duration  float64
	CreatedAt string
}

// Result 请求渲染的结果，ResultURL 和 TalkID 至少有一个
type Result struct {
	ResultURL string
	TalkID    string
}

type OutcomeKind string

const (
	OutcomeDone     OutcomeKind = "done"
	OutcomeError    OutcomeKind = "error"
	OutcomeTimeout  OutcomeKind = "timeout"
	OutcomeFailed   OutcomeKind = "failed"
	OutcomeCanceled OutcomeKind = "canceled"
)

// Outcome 轮询的最终结果，只有 OutcomeDone 的时候 ResultURL 有值
type Outcome struct {
	Kind      OutcomeKind
	ResultURL string
	// Attempts 实际查询的次数
	Attempts int
	Err      error
}

func (o Outcome) OK() bool {
	return o.Kind == OutcomeDone
}
