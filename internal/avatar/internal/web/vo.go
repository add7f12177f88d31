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

type CreateTalkReq struct {
	Text      string `json:"text"`
	SessionID string `json:"sessionId"`
}

type CreateTalkResp struct {
	ResultURL string `json:"resultUrl,omitempty"`
	TalkID    string `json:"talkId,omitempty"`
}

type TalkVO struct {
	TalkID    string  `json:"talkId"`
	Status    string  `json:"status"`
	ResultURL string  `json:"resultUrl"`
	Duration  float64 `json:"duration"`
	CreatedAt string  `json:"createdAt"`
}

type ErrorResp struct {
	Error string `json:"error"`
}
