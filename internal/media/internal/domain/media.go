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

package domain

type UploadObject struct {
	Folder string
	Name   string
	Data   []byte
}

type StoredFile struct {
	FileID   string
	Name     string
	Size     int64
	FilePath string
	URL      string
}

// Credential 浏览器直传 COS 用的临时密钥
type Credential struct {
	SecretID     string
	SecretKey    string
	SessionToken string
	StartTime    int64
	ExpiredTime  int64
	Bucket       string
	Region       string
}
