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
	"encoding/base64"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Upload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("private_key:"))
		if r.Header.Get("Authorization") != wantAuth {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"unauthorized"}`))
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		data, _ := io.ReadAll(file)
		if r.FormValue("folder") != "/resumes/" || r.FormValue("fileName") != header.Filename ||
			r.FormValue("useUniqueFileName") != "false" || string(data) != "pdf-content" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"fileId":"f1","name":"1700000000000.pdf","size":11,"filePath":"/resumes/1700000000000.pdf","url":"https://ik.imagekit.io/demo/resumes/1700000000000.pdf"}`))
	}))
	defer server.Close()

	testCases := []struct {
		name     string
		key      string
		wantFile File
		wantErr  error
	}{
		{
			name: "上传成功",
			key:  "private_key",
			wantFile: File{
				FileID:   "f1",
				Name:     "1700000000000.pdf",
				Size:     11,
				FilePath: "/resumes/1700000000000.pdf",
				URL:      "https://ik.imagekit.io/demo/resumes/1700000000000.pdf",
			},
		},
		{
			name:    "密钥错误",
			key:     "wrong",
			wantErr: ErrUploadFailed,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClient(server.URL, tc.key, server.Client())
			f, err := c.Upload(t.Context(), "/resumes/", "1700000000000.pdf", []byte("pdf-content"))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantFile, f)
		})
	}
}
