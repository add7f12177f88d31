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
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/mockinterview/internal/avatar/internal/domain"
)

const DefaultBaseURL = "https://api.d-id.com"

var (
	// ErrInsufficientCredits 账户额度不足，重试没有意义
	ErrInsufficientCredits = errors.New("D-ID 额度不足")
	// ErrUpstream D-ID 返回了非 2xx
	ErrUpstream = errors.New("D-ID 接口错误")
	// ErrNetwork 网络错误，查询时可以重试
	ErrNetwork = errors.New("D-ID 网络错误")

	errServer = errors.New("5xx")
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client 数字人渲染接口
//
//go:generate mockgen -source=./client.go -destination=../../mocks/client.mock.go -package=avatarmocks Client
type Client interface {
	// CreateTalk 提交渲染任务。有的任务会直接带上结果
	CreateTalk(ctx context.Context, text string) (domain.Talk, error)
	GetTalk(ctx context.Context, talkID string) (domain.Talk, error)
}

type createTalkReq struct {
	SourceURL string     `json:"source_url"`
	Script    talkScript `json:"script"`
	Config    talkConfig `json:"config"`
}

type talkScript struct {
	Type      string `json:"type"`
	Input     string `json:"input"`
	Subtitles bool   `json:"subtitles"`
}

type talkConfig struct {
	ResultFormat string `json:"result_format"`
	Fluent       bool   `json:"fluent"`
	Stitch       bool   `json:"stitch"`
}

type talkResp struct {
	ID        string  `json:"id"`
	Status    string  `json:"status"`
	ResultURL string  `json:"result_url"`
	Duration  float64 `json:"duration"`
	CreatedAt string  `json:"created_at"`
}

type DIDClient struct {
	baseURL   string
	apiKey    string
	sourceURL string
	client    HTTPClient

	interval    time.Duration
	maxInterval time.Duration
	maxRetries  int32
}

func NewDIDClient(baseURL, apiKey, sourceURL string, client HTTPClient,
	interval, maxInterval time.Duration, maxRetries int32) *DIDClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &DIDClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		sourceURL:   sourceURL,
		client:      client,
		interval:    interval,
		maxInterval: maxInterval,
		maxRetries:  maxRetries,
	}
}

// CreateTalk 创建任务会消耗额度，所以不重试
func (c *DIDClient) CreateTalk(ctx context.Context, text string) (domain.Talk, error) {
	body, err := json.Marshal(createTalkReq{
		SourceURL: c.sourceURL,
		Script: talkScript{
			Type:      "text",
			Input:     text,
			Subtitles: false,
		},
		Config: talkConfig{
			ResultFormat: "mp4",
			Fluent:       true,
			Stitch:       true,
		},
	})
	if err != nil {
		return domain.Talk{}, err
	}
	return c.do(ctx, http.MethodPost, "/talks", body)
}

func (c *DIDClient) GetTalk(ctx context.Context, talkID string) (domain.Talk, error) {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(c.interval, c.maxInterval, c.maxRetries)
	if err != nil {
		return domain.Talk{}, fmt.Errorf("创建重试策略失败: %w", err)
	}
	for {
		talk, er := c.do(ctx, http.MethodGet, "/talks/"+talkID, nil)
		if er == nil || !(errors.Is(er, ErrNetwork) || errors.Is(er, errServer)) {
			return talk, er
		}
		next, ok := strategy.Next()
		if !ok {
			return domain.Talk{}, er
		}
		select {
		case <-ctx.Done():
			return domain.Talk{}, ctx.Err()
		case <-time.After(next):
		}
	}
}

func (c *DIDClient) do(ctx context.Context, method, path string, body []byte) (domain.Talk, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return domain.Talk{}, err
	}
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.apiKey+":")))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Talk{}, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Talk{}, fmt.Errorf("%w: 读取响应失败: %w", ErrNetwork, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if strings.Contains(string(data), "InsufficientCreditsError") {
			return domain.Talk{}, fmt.Errorf("%w: %s", ErrInsufficientCredits, data)
		}
		if resp.StatusCode >= 500 {
			return domain.Talk{}, fmt.Errorf("%w: %w: status=%d, body=%s", ErrUpstream, errServer, resp.StatusCode, data)
		}
		return domain.Talk{}, fmt.Errorf("%w: status=%d, body=%s", ErrUpstream, resp.StatusCode, data)
	}
	var res talkResp
	if err = json.Unmarshal(data, &res); err != nil {
		return domain.Talk{}, fmt.Errorf("%w: 解析响应失败: %w", ErrUpstream, err)
	}
	return domain.Talk{
		ID:        res.ID,
		Status:    domain.TalkStatus(res.Status),
		ResultURL: res.ResultURL,
		Duration:  res.Duration,
		CreatedAt: res.CreatedAt,
	}, nil
}
