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

package avatar

import (
	"github.com/ecodeclub/mockinterview/internal/avatar/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/avatar/internal/service"
	"github.com/ecodeclub/mockinterview/internal/avatar/internal/web"
)

type (
	Service     = service.Service
	PollConfig  = service.PollConfig
	Talk        = domain.Talk
	Result      = domain.Result
	Outcome     = domain.Outcome
	OutcomeKind = domain.OutcomeKind
	Handler     = web.Handler
)

const (
	OutcomeDone     = domain.OutcomeDone
	OutcomeError    = domain.OutcomeError
	OutcomeTimeout  = domain.OutcomeTimeout
	OutcomeFailed   = domain.OutcomeFailed
	OutcomeCanceled = domain.OutcomeCanceled
)

var ErrInsufficientCredits = service.ErrInsufficientCredits
