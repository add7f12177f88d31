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

package interview

import (
	"github.com/ecodeclub/mockinterview/internal/interview/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/service"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/web"
)

type (
	Interview = domain.Interview
	Question  = domain.Question
	Response  = domain.Response
	Feedback  = domain.Feedback
	QA        = domain.QA
	Status    = domain.Status

	Service       = service.InterviewService
	FileUploader  = service.FileUploader
	WebhookPoster = service.WebhookPoster
	Handler       = web.Handler
)

const (
	StatusPending   = domain.StatusPending
	StatusCompleted = domain.StatusCompleted
)

var (
	ErrInterviewNotFound = service.ErrInterviewNotFound
	ErrFeedbackNotFound  = service.ErrFeedbackNotFound
)

func ParseQuestions(raw any) []Question {
	return domain.ParseQuestions(raw)
}
