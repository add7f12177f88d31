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

package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/ecodeclub/ecache"
)

// QuotaWindow 每个用户在这个时间窗口内只能生成一次面试
const QuotaWindow = 24 * time.Hour

//go:generate mockgen -source=./quota.go -package=cachemocks -destination=mocks/quota.mock.go QuotaCache
type QuotaCache interface {
	// Acquire 返回 false 说明窗口内已经用过了
	Acquire(ctx context.Context, uid int64) (bool, error)
	Release(ctx context.Context, uid int64) error
}

type quotaECache struct {
	ec ecache.Cache
}

func NewQuotaECache(ec ecache.Cache) QuotaCache {
	return &quotaECache{
		ec: &ecache.NamespaceCache{
			Namespace: "interview:",
			C:         ec,
		},
	}
}

func (q *quotaECache) Acquire(ctx context.Context, uid int64) (bool, error) {
	return q.ec.SetNX(ctx, q.key(uid), 1, QuotaWindow)
}

func (q *quotaECache) Release(ctx context.Context, uid int64) error {
	_, err := q.ec.Delete(ctx, q.key(uid))
	return err
}

func (q *quotaECache) key(uid int64) string {
	return "quota:" + strconv.FormatInt(uid, 10)
}
