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
	"strings"

	"github.com/ecodeclub/mockinterview/internal/media/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/pkg/imagekit"
)

var ErrEmptyFile = errors.New("文件内容为空")

// Storage 把文件存到公开可访问的对象存储
//
//go:generate mockgen -source=./storage.go -destination=../../mocks/storage.mock.go -package=mediamocks Storage
type Storage interface {
	Upload(ctx context.Context, obj domain.UploadObject) (domain.StoredFile, error)
}

type ImageKitUploader interface {
	Upload(ctx context.Context, folder, fileName string, data []byte) (imagekit.File, error)
}

type imageKitStorage struct {
	client ImageKitUploader
}

func NewImageKitStorage(client ImageKitUploader) Storage {
	return &imageKitStorage{client: client}
}

func (s *imageKitStorage) Upload(ctx context.Context, obj domain.UploadObject) (domain.StoredFile, error) {
	if len(obj.Data) == 0 {
		return domain.StoredFile{}, ErrEmptyFile
	}
	folder := obj.Folder
	if !strings.HasPrefix(folder, "/") {
		folder = "/" + folder
	}
	f, err := s.client.Upload(ctx, folder, obj.Name, obj.Data)
	if err != nil {
		return domain.StoredFile{}, err
	}
	return domain.StoredFile{
		FileID:   f.FileID,
		Name:     f.Name,
		Size:     f.Size,
		FilePath: f.FilePath,
		URL:      f.URL,
	}, nil
}

// URLUploader 给只关心访问地址的调用方用
type URLUploader struct {
	storage Storage
}

func NewURLUploader(storage Storage) *URLUploader {
	return &URLUploader{storage: storage}
}

func (u *URLUploader) Upload(ctx context.Context, folder, name string, data []byte) (string, error) {
	f, err := u.storage.Upload(ctx, domain.UploadObject{Folder: folder, Name: name, Data: data})
	if err != nil {
		return "", err
	}
	return f.URL, nil
}
