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

import "github.com/ecodeclub/mockinterview/internal/session/internal/domain"

type StartReq struct {
	InterviewID int64 `json:"interviewId"`
}

type SessionReq struct {
	SessionID string `json:"sessionId"`
}

type PermissionsReq struct {
	SessionID string `json:"sessionId"`
	Audio     bool   `json:"audio"`
	Video     bool   `json:"video"`
}

type TranscriptReq struct {
	SessionID string `json:"sessionId"`
	Text      string `json:"text"`
	// Manual 用户手动输入的草稿，不是语音识别的片段
	Manual bool `json:"manual"`
}

type StopReq struct {
	SessionID string `json:"sessionId"`
	Text      string `json:"text"`
}

type Permissions struct {
	Audio bool `json:"audio"`
	Video bool `json:"video"`
}

type Session struct {
	SessionID   string      `json:"sessionId"`
	InterviewID int64       `json:"interviewId"`
	State       string      `json:"state"`
	Index       int         `json:"index"`
	Total       int         `json:"total"`
	Question    string      `json:"question,omitempty"`
	Permissions Permissions `json:"permissions"`
	AvatarURL   string      `json:"avatarUrl,omitempty"`
	AvatarError string      `json:"avatarError,omitempty"`
	Degraded    bool        `json:"degraded"`
	LastError   string      `json:"lastError,omitempty"`
	Transcript  string      `json:"transcript,omitempty"`
	Redirect    string      `json:"redirect,omitempty"`
	Utime       int64       `json:"utime"`
}

func newSession(snap domain.Snapshot) Session {
	return Session{
		SessionID:   snap.SessionID,
		InterviewID: snap.InterviewID,
		State:       string(snap.State),
		Index:       snap.Index,
		Total:       snap.Total,
		Question:    snap.Question,
		Permissions: Permissions{
			Audio: snap.Permissions.Audio,
			Video: snap.Permissions.Video,
		},
		AvatarURL:   snap.AvatarURL,
		AvatarError: snap.AvatarError,
		Degraded:    snap.Degraded,
		LastError:   snap.LastError,
		Transcript:  snap.Transcript,
		Redirect:    snap.Redirect,
		Utime:       snap.Utime,
	}
}

// WsCommand 客户端通过 websocket 发送的指令
type WsCommand struct {
	// Type 取值 transcript draft avatar_ended stop leave
	Type string `json:"type"`
	Text string `json:"text"`
}

// WsMessage 服务端推送的消息
type WsMessage struct {
	// Type state 或者 error
	Type    string   `json:"type"`
	Session *Session `json:"session,omitempty"`
	Msg     string   `json:"msg,omitempty"`
}
