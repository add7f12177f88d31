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

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsBuilder 统计每个接口的耗时和次数，路径用路由模板，避免把 id 打进标签
type MetricsBuilder struct {
	namespace  string
	registerer prometheus.Registerer
}

func NewMetricsBuilder(namespace string) *MetricsBuilder {
	return &MetricsBuilder{
		namespace:  namespace,
		registerer: prometheus.DefaultRegisterer,
	}
}

// Registerer 测试的时候换成独立的 registry
func (b *MetricsBuilder) Registerer(r prometheus.Registerer) *MetricsBuilder {
	b.registerer = r
	return b
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	labels := []string{"method", "path", "status_code"}
	summaryVec := prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: b.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration in seconds",
		Objectives: map[float64]float64{
			0.5:  0.05,
			0.9:  0.01,
			0.99: 0.001,
		},
	}, labels)
	counterVec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: b.namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, labels)
	// websocket 之类的长连接也算在里面
	activeGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: b.namespace,
		Name:      "http_active_requests",
		Help:      "Number of in-flight HTTP requests",
	})
	b.registerer.MustRegister(summaryVec, counterVec, activeGauge)

	return func(ctx *gin.Context) {
		start := time.Now()
		activeGauge.Inc()
		defer func() {
			activeGauge.Dec()
			path := ctx.FullPath()
			if path == "" {
				path = "unknown"
			}
			lvs := []string{ctx.Request.Method, path, strconv.Itoa(ctx.Writer.Status())}
			summaryVec.WithLabelValues(lvs...).Observe(time.Since(start).Seconds())
			counterVec.WithLabelValues(lvs...).Inc()
		}()
		ctx.Next()
	}
}
