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
	"errors"
	"testing"

	"github.com/ecodeclub/mockinterview/internal/media/internal/domain"
	mediamocks "github.com/ecodeclub/mockinterview/internal/media/mocks"
	"github.com/ecodeclub/mockinterview/internal/pkg/imagekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestImageKitStorage_Upload(t *testing.T) {
	testCases := []struct {
		name    string
		obj     domain.UploadObject
		mock    func(ctrl *gomock.Controller) ImageKitUploader
		want    domain.StoredFile
		wantErr error
	}{
		{
			name: "上传成功",
			obj:  domain.UploadObject{Folder: "interviews/1", Name: "audio_1_response.webm", Data: []byte("a")},
			mock: func(ctrl *gomock.Controller) ImageKitUploader {
				c := mediamocks.NewMockImageKitUploader(ctrl)
				c.EXPECT().Upload(gomock.Any(), "/interviews/1", "audio_1_response.webm", []byte("a")).
					Return(imagekit.File{FileID: "f1", Name: "audio_1_response.webm", Size: 1, URL: "https://ik/a.webm"}, nil)
				return c
			},
			want: domain.StoredFile{FileID: "f1", Name: "audio_1_response.webm", Size: 1, URL: "https://ik/a.webm"},
		},
		{
			name: "空文件",
			obj:  domain.UploadObject{Folder: "interviews/1", Name: "a.webm"},
			mock: func(ctrl *gomock.Controller) ImageKitUploader {
				return mediamocks.NewMockImageKitUploader(ctrl)
			},
			wantErr: ErrEmptyFile,
		},
		{
			name: "上传失败",
			obj:  domain.UploadObject{Folder: "/resumes/", Name: "1.pdf", Data: []byte("pdf")},
			mock: func(ctrl *gomock.Controller) ImageKitUploader {
				c := mediamocks.NewMockImageKitUploader(ctrl)
				c.EXPECT().Upload(gomock.Any(), "/resumes/", "1.pdf", []byte("pdf")).
					Return(imagekit.File{}, imagekit.ErrUploadFailed)
				return c
			},
			wantErr: imagekit.ErrUploadFailed,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			s := NewImageKitStorage(tc.mock(ctrl))
			f, err := s.Upload(t.Context(), tc.obj)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, f)
		})
	}
}

func TestURLUploader_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	storage := mediamocks.NewMockStorage(ctrl)
	storage.EXPECT().Upload(gomock.Any(), domain.UploadObject{Folder: "/resumes/", Name: "1.pdf", Data: []byte("pdf")}).
		Return(domain.StoredFile{URL: "https://ik/resumes/1.pdf"}, nil)
	storage.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(domain.StoredFile{}, errors.New("mock error"))

	u := NewURLUploader(storage)
	url, err := u.Upload(t.Context(), "/resumes/", "1.pdf", []byte("pdf"))
	require.NoError(t, err)
	assert.Equal(t, "https://ik/resumes/1.pdf", url)

	_, err = u.Upload(t.Context(), "/resumes/", "2.pdf", []byte("pdf"))
	assert.Error(t, err)
}
