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

package media

import (
	"github.com/ecodeclub/mockinterview/internal/media/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/media/internal/service"
	"github.com/ecodeclub/mockinterview/internal/media/internal/web"
)

type (
	Storage           = service.Storage
	URLUploader       = service.URLUploader
	CredentialService = service.CredentialService
	UploadObject      = domain.UploadObject
	StoredFile        = domain.StoredFile
	Handler           = web.Handler
)

var ErrEmptyFile = service.ErrEmptyFile
