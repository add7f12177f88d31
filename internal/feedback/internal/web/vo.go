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

import "github.com/ecodeclub/mockinterview/internal/interview"

type GenerateReq struct {
	InterviewID int64 `json:"interviewId"`
	UserID      int64 `json:"userId"`
}

type Review struct {
	Feedback                  string   `json:"feedback"`
	KnowledgeBasedRating      string   `json:"knowledge_based_rating"`
	SuggestionsForImprovement []string `json:"suggestions_for_improvement"`
	OverallScore              float64  `json:"overall_score"`
}

func newReview(fb interview.Feedback) *Review {
	return &Review{
		Feedback:                  fb.Feedback,
		KnowledgeBasedRating:      fb.KnowledgeBasedRating,
		SuggestionsForImprovement: fb.SuggestionsForImprovement,
		OverallScore:              fb.OverallScore,
	}
}

type GenerateResp struct {
	Success        bool    `json:"success"`
	Feedback       *Review `json:"feedback,omitempty"`
	TotalQuestions int     `json:"totalQuestions,omitempty"`
	InterviewID    int64   `json:"interviewId,omitempty"`
	UserID         int64   `json:"userId,omitempty"`
	Error          string  `json:"error,omitempty"`
}
