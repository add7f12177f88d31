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

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mockinterview/internal/session/internal/errs"
	"github.com/ecodeclub/mockinterview/internal/session/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	sessionNotFoundResult = ginx.Result{
		Code: errs.SessionNotFound.Code,
		Msg:  errs.SessionNotFound.Msg,
	}
	invalidStateResult = ginx.Result{
		Code: errs.InvalidState.Code,
		Msg:  errs.InvalidState.Msg,
	}
	interviewNotFoundResult = ginx.Result{
		Code: errs.InterviewNotFound.Code,
		Msg:  errs.InterviewNotFound.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
)

func errorResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return sessionNotFoundResult
	case errors.Is(err, service.ErrInvalidState),
		errors.Is(err, service.ErrAlreadyStarted),
		errors.Is(err, service.ErrSessionClosed),
		errors.Is(err, service.ErrNotRecording):
		return invalidStateResult
	case errors.Is(err, service.ErrInterviewNotFound):
		return interviewNotFoundResult
	case errors.Is(err, service.ErrNoQuestions),
		errors.Is(err, service.ErrInvalidMediaKind),
		errors.Is(err, service.ErrTrackNotAcquired),
		errors.Is(err, service.ErrChunkTooLarge),
		errors.Is(err, errUnknownCommand):
		return invalidInputResult
	default:
		return systemErrorResult
	}
}
