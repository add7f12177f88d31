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

package ioc

import (
	"context"
	"time"

	"github.com/ecodeclub/mockinterview/internal/session"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

func initCronJobs(sweepJob *session.SweepIdleSessionsJob) []ecron.Ecron {
	timeout := econf.GetDuration("cron.sessionSweep.timeout")
	return []ecron.Ecron{
		ecron.Load("cron.sessionSweep").Build(ecron.WithJob(wrapJob(sweepJob, timeout))),
	}
}

// wrapJob 给定时任务加上耗时日志，timeout 大于 0 时限制单次运行时间
func wrapJob(job ecron.NamedJob, timeout time.Duration) ecron.FuncJob {
	logger := elog.DefaultLogger.With(elog.FieldComponent("Cron"), elog.String("cronjob", job.Name()))
	return func(ctx context.Context) error {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		start := time.Now()
		err := job.Run(ctx)
		if err != nil {
			logger.Error("定时任务执行失败", elog.FieldErr(err), elog.FieldCost(time.Since(start)))
			return err
		}
		logger.Debug("定时任务执行完毕", elog.FieldCost(time.Since(start)))
		return nil
	}
}
