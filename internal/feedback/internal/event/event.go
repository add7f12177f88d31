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

package event

const interviewCompletedEvents = "interview_completed_events"

// InterviewCompletedEvent 面试答完所有题目之后发出
type InterviewCompletedEvent struct {
	InterviewID int64 `json:"interviewId"`
	Uid         int64 `json:"uid"`
}
