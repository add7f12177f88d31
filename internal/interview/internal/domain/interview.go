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

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

// Interview 一次模拟面试。题目只保存出题工作流返回的原始内容，题目列表是解析出来的
type Interview struct {
	ID  int64
	Uid int64
	// RawQuestions 可能是一整段文本，也可能是列表
	RawQuestions   any
	ResumeURL      string
	JobTitle       string
	JobDescription string
	Status         Status
	Ctime          int64
	Utime          int64
}

func (i Interview) Questions() []Question {
	return ParseQuestions(i.RawQuestions)
}

// Summary 用户面试列表里的一项
type Summary struct {
	Interview     Interview
	QuestionCount int
	ResponseCount int64
	HasFeedback   bool
	// Feedback 第一份评估，HasFeedback 为 false 时是零值
	Feedback Feedback
}

// Completed 有评估，或者每道题都有回答
func (s Summary) Completed() bool {
	if s.HasFeedback || s.Interview.Status == StatusCompleted {
		return true
	}
	return s.QuestionCount > 0 && s.ResponseCount >= int64(s.QuestionCount)
}

// Attended 参加过的面试：有评估且至少回答过一道题
func (s Summary) Attended() bool {
	return s.HasFeedback && s.ResponseCount > 0
}
