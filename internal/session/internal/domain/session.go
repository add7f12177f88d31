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

type State string

const (
	StateLoading             State = "loading"
	StateAwaitingPermissions State = "awaiting_permissions"
	StateAvatarSpeaking      State = "avatar_speaking"
	StateRecording           State = "recording"
	StateUploading           State = "uploading"
	StateFinalizing          State = "finalizing"
	StateComplete            State = "complete"
	StateLeft                State = "left"
)

func (s State) String() string {
	return string(s)
}

// Terminal 会话已经结束，不再接受任何操作
func (s State) Terminal() bool {
	return s == StateComplete || s == StateLeft
}

// Permissions 用户对麦克风和摄像头的授权，两个都拒绝就是纯文本模式
type Permissions struct {
	Audio bool
	Video bool
}

func (p Permissions) Any() bool {
	return p.Audio || p.Video
}

type MediaKind string

const (
	MediaAudio MediaKind = "audio"
	MediaVideo MediaKind = "video"
)

func (k MediaKind) Valid() bool {
	return k == MediaAudio || k == MediaVideo
}

// Snapshot 会话在某一时刻的状态，给前端渲染
type Snapshot struct {
	SessionID   string
	InterviewID int64
	State       State
	// Index 当前题目的下标
	Index    int
	Total    int
	Question string

	Permissions Permissions
	AvatarURL   string
	// AvatarError 数字人失败的原因，这时候只显示字幕
	AvatarError string
	// Degraded 出过错但是还能继续
	Degraded   bool
	LastError  string
	Transcript string
	// Redirect 会话结束后前端要跳转的地址
	Redirect string
	Utime    int64
}
