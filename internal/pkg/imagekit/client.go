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

package imagekit

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

const DefaultUploadEndpoint = "https://upload.imagekit.io/api/v1/files/upload"

var ErrUploadFailed = errors.New("imagekit 上传失败")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type File struct {
	FileID   string `json:"fileId"`
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	FilePath string `json:"filePath"`
	URL      string `json:"url"`
}

type Client struct {
	endpoint   string
	privateKey string
	client     HTTPClient
}

func NewClient(endpoint, privateKey string, client HTTPClient) *Client {
	if endpoint == "" {
		endpoint = DefaultUploadEndpoint
	}
	return &Client{
		endpoint:   endpoint,
		privateKey: privateKey,
		client:     client,
	}
}

// Upload 上传文件，文件名由调用方决定，不让 imagekit 追加随机后缀
func (c *Client) Upload(ctx context.Context, folder, fileName string, data []byte) (File, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return File{}, err
	}
	if _, err = part.Write(data); err != nil {
		return File{}, err
	}
	fields := map[string]string{
		"fileName":          fileName,
		"folder":            folder,
		"useUniqueFileName": "false",
	}
	for k, v := range fields {
		if err = writer.WriteField(k, v); err != nil {
			return File{}, err
		}
	}
	if err = writer.Close(); err != nil {
		return File{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return File{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.privateKey+":")))

	resp, err := c.client.Do(req)
	if err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return File{}, fmt.Errorf("%w: status=%d, body=%s", ErrUploadFailed, resp.StatusCode, respBody)
	}
	var res File
	if err = json.Unmarshal(respBody, &res); err != nil {
		return File{}, fmt.Errorf("%w: 解析响应失败: %w", ErrUploadFailed, err)
	}
	return res, nil
}
