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

// Response 某道题的回答，提交之后不会再修改
type Response struct {
	ID            int64
	InterviewID   int64
	QuestionIndex int
	QuestionText  string
	ResponseText  string
	AudioURL      string
	VideoURL      string
	Uid           int64
	// Timestamp 提交时间，毫秒
	Timestamp int64
	// Duration 回答时长，秒
	Duration int64
}

// Dedup 同一道题有多条回答时只保留最早的那条，入参需要按 (题目下标, ID) 升序
func Dedup(responses []Response) []Response {
	res := make([]Response, 0, len(responses))
	for i := range responses {
		if len(res) > 0 && res[len(res)-1].QuestionIndex == responses[i].QuestionIndex {
			continue
		}
		res = append(res, responses[i])
	}
	return res
}
