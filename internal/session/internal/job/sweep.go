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

package job

import (
	"context"
	"time"

	"github.com/ecodeclub/mockinterview/internal/session/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*SweepIdleSessionsJob)(nil)

// SweepIdleSessionsJob 释放长时间没有操作的会话，归还它们占用的设备和定时器
type SweepIdleSessionsJob struct {
	registry *service.Registry
	idle     time.Duration
	logger   *elog.Component
}

func NewSweepIdleSessionsJob(registry *service.Registry, idle time.Duration) *SweepIdleSessionsJob {
	return &SweepIdleSessionsJob{
		registry: registry,
		idle:     idle,
		logger:   elog.DefaultLogger,
	}
}

func (j *SweepIdleSessionsJob) Name() string {
	return "SweepIdleSessionsJob"
}

func (j *SweepIdleSessionsJob) Run(ctx context.Context) error {
	n := j.registry.Sweep(ctx, j.idle)
	if n > 0 {
		j.logger.Info("释放空闲会话", elog.Int64("count", int64(n)), elog.Int64("remaining", int64(j.registry.Len())))
	}
	return nil
}
