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

package session

import (
	"github.com/ecodeclub/mockinterview/internal/session/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/session/internal/job"
	"github.com/ecodeclub/mockinterview/internal/session/internal/service"
	"github.com/ecodeclub/mockinterview/internal/session/internal/web"
)

type (
	Controller           = service.Controller
	Registry             = service.Registry
	Config               = service.Config
	Deps                 = service.Deps
	Snapshot             = domain.Snapshot
	State                = domain.State
	Handler              = web.Handler
	SweepIdleSessionsJob = job.SweepIdleSessionsJob
)

var ErrSessionNotFound = service.ErrSessionNotFound
