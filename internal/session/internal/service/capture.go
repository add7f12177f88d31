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
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ecodeclub/mockinterview/internal/session/internal/domain"
)

var (
	ErrTrackNotAcquired = errors.New("没有获取该类型的设备")
	ErrNotRecording     = errors.New("没有在录制")
	ErrStreamReleased   = errors.New("设备已经释放")
	ErrChunkTooLarge    = errors.New("录制的数据超过上限")
)

// BufferDevices 浏览器把录制的数据分片推上来，服务端只负责按题目缓存
type BufferDevices struct {
	// MaxBytes 每种媒体每道题的上限，0 表示不限制
	MaxBytes int
}

func NewBufferDevices(maxBytes int) *BufferDevices {
	return &BufferDevices{MaxBytes: maxBytes}
}

func (d *BufferDevices) Acquire(_ context.Context, perms domain.Permissions) (Stream, error) {
	if !perms.Any() {
		return nil, fmt.Errorf("%w: 没有任何授权", ErrTrackNotAcquired)
	}
	tracks := make(map[domain.MediaKind]*bytes.Buffer, 2)
	if perms.Audio {
		tracks[domain.MediaAudio] = nil
	}
	if perms.Video {
		tracks[domain.MediaVideo] = nil
	}
	return &bufferStream{tracks: tracks, maxBytes: d.MaxBytes}, nil
}

type bufferStream struct {
	mu       sync.Mutex
	tracks   map[domain.MediaKind]*bytes.Buffer
	maxBytes int
	active   bool
	released bool
}

func (s *bufferStream) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return ErrStreamReleased
	}
	for k := range s.tracks {
		s.tracks[k] = &bytes.Buffer{}
	}
	s.active = true
	return nil
}

func (s *bufferStream) Append(kind domain.MediaKind, chunk []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return ErrStreamReleased
	}
	buf, ok := s.tracks[kind]
	if !ok {
		return ErrTrackNotAcquired
	}
	if !s.active {
		return ErrNotRecording
	}
	if s.maxBytes > 0 && buf.Len()+len(chunk) > s.maxBytes {
		return ErrChunkTooLarge
	}
	buf.Write(chunk)
	return nil
}

func (s *bufferStream) End() map[domain.MediaKind][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make(map[domain.MediaKind][]byte, len(s.tracks))
	if !s.active || s.released {
		return res
	}
	for k, buf := range s.tracks {
		if buf != nil && buf.Len() > 0 {
			res[k] = buf.Bytes()
		}
		s.tracks[k] = nil
	}
	s.active = false
	return res
}

func (s *bufferStream) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.tracks {
		s.tracks[k] = nil
	}
	s.active = false
	s.released = true
}

// TranscriptSpeech 浏览器做语音识别，服务端只是把识别出来的片段拼起来
type TranscriptSpeech struct{}

func (TranscriptSpeech) New(_ context.Context) (Recognizer, error) {
	return &transcriptRecognizer{}, nil
}

type transcriptRecognizer struct {
	mu      sync.Mutex
	parts   []string
	stopped bool
}

func (r *transcriptRecognizer) Feed(text string) {
	text = strings.TrimSpace(text)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped || text == "" {
		return
	}
	r.parts = append(r.parts, text)
}

func (r *transcriptRecognizer) Transcript() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return strings.Join(r.parts, " ")
}

func (r *transcriptRecognizer) Stop() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
	return strings.Join(r.parts, " ")
}
