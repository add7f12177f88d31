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
	"errors"
	"sync"
	"time"

	"github.com/gotomicro/ego/core/elog"
)

var ErrSessionNotFound = errors.New("面试会话不存在")

// Registry 进程内的会话表
type Registry struct {
	cfg      Config
	deps     Deps
	mu       sync.RWMutex
	sessions map[string]*Controller
	logger   *elog.Component
}

func NewRegistry(cfg Config, deps Deps) *Registry {
	return &Registry{
		cfg:      cfg,
		deps:     deps,
		sessions: make(map[string]*Controller),
		logger:   elog.DefaultLogger.With(elog.FieldComponent("SessionRegistry")),
	}
}

func (r *Registry) Create(interviewID, uid int64) *Controller {
	c := New(r.cfg, r.deps, interviewID, uid)
	r.mu.Lock()
	r.sessions[c.ID()] = c
	r.mu.Unlock()
	go r.removeWhenDone(c)
	return c
}

// removeWhenDone 会话结束之后再保留 FinishedLinger 就从会话表里删掉
func (r *Registry) removeWhenDone(c *Controller) {
	<-c.Done()
	if r.cfg.FinishedLinger > 0 {
		time.Sleep(r.cfg.FinishedLinger)
	}
	r.mu.Lock()
	if r.sessions[c.ID()] == c {
		delete(r.sessions, c.ID())
	}
	r.mu.Unlock()
}

// Get 只能拿到自己的会话
func (r *Registry) Get(id string, uid int64) (*Controller, error) {
	r.mu.RLock()
	c, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok || c.Uid() != uid {
		return nil, ErrSessionNotFound
	}
	return c, nil
}

func (r *Registry) Remove(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep 释放超过 idle 没有活动的会话，返回释放的个数
func (r *Registry) Sweep(ctx context.Context, idle time.Duration) int {
	deadline := time.Now().Add(-idle)
	var expired []*Controller
	r.mu.Lock()
	for id, c := range r.sessions {
		if c.LastActive().Before(deadline) {
			expired = append(expired, c)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()
	for _, c := range expired {
		if err := c.Leave(ctx); err != nil {
			r.logger.Warn("释放空闲会话失败", elog.FieldErr(err), elog.String("sessionId", c.ID()))
		}
	}
	return len(expired)
}
