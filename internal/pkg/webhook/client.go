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

package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/retry"
)

var (
	// ErrClientError 4xx，不重试
	ErrClientError = errors.New("webhook 客户端错误")
	// ErrServerError 5xx，重试
	ErrServerError = errors.New("webhook 服务端错误")
	// ErrNetworkError 网络错误，重试
	ErrNetworkError = errors.New("webhook 网络错误")
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client 调用 n8n 之类的工作流 webhook。
// 题目生成和面试评估都是通过它发出去的，对方的响应格式不稳定，所以这里只返回原始 JSON。
type Client struct {
	baseURL     string
	client      HTTPClient
	interval    time.Duration
	maxInterval time.Duration
	maxRetries  int32
}

func NewClient(baseURL string, client HTTPClient,
	interval, maxInterval time.Duration, maxRetries int32) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		client:      client,
		interval:    interval,
		maxInterval: maxInterval,
		maxRetries:  maxRetries,
	}
}

// Post 以 JSON 发送 body，返回响应体
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("序列化请求失败: %w", err)
	}
	var res json.RawMessage
	err = c.doWithRetry(ctx, func() error {
		var er error
		res, er = c.postOnce(ctx, path, data)
		return er
	})
	return res, err
}

func (c *Client) doWithRetry(ctx context.Context, operation func() error) error {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(c.interval, c.maxInterval, c.maxRetries)
	if err != nil {
		return fmt.Errorf("创建重试策略失败: %w", err)
	}
	var lastErr error
	for {
		if ctx.Err() != nil {
			return fmt.Errorf("context已取消: %w", ctx.Err())
		}
		err = operation()
		if err == nil {
			return nil
		}
		lastErr = err
		if errors.Is(err, ErrClientError) {
			return err
		}
		next, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("超过最大重试次数，最后一次错误: %w", lastErr)
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("context已取消: %w", ctx.Err())
		case <-time.After(next):
		}
	}
}

func (c *Client) postOnce(ctx context.Context, path string, data []byte) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: 创建请求失败: %w", ErrClientError, err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: 读取响应失败: %w", ErrNetworkError, err)
	}
	switch {
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: status=%d, body=%s", ErrServerError, resp.StatusCode, body)
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("%w: status=%d, body=%s", ErrClientError, resp.StatusCode, body)
	}
	return body, nil
}
