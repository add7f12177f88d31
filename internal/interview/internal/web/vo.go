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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/domain"
)

type IDReq struct {
	ID int64 `json:"id"`
}

type InterviewIDReq struct {
	InterviewID int64 `json:"interviewId"`
}

type ListReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	// AttendedOnly 只看参加过的面试，此时忽略分页
	AttendedOnly bool `json:"attendedOnly"`
}

type Question struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

type Interview struct {
	ID             int64      `json:"id"`
	JobTitle       string     `json:"jobTitle"`
	JobDescription string     `json:"jobDescription"`
	ResumeURL      string     `json:"resumeUrl"`
	Status         string     `json:"status"`
	Questions      []Question `json:"questions"`
	// NextIndex 仅在详情中返回
	NextIndex int   `json:"nextIndex"`
	Ctime     int64 `json:"ctime"`
	Utime     int64 `json:"utime"`
}

func newInterview(src domain.Interview) Interview {
	return Interview{
		ID:             src.ID,
		JobTitle:       src.JobTitle,
		JobDescription: src.JobDescription,
		ResumeURL:      src.ResumeURL,
		Status:         src.Status.String(),
		Questions: slice.Map(src.Questions(), func(_ int, q domain.Question) Question {
			return Question{Index: q.Index, Text: q.Text}
		}),
		Ctime: src.Ctime,
		Utime: src.Utime,
	}
}

type Response struct {
	ID            int64  `json:"id"`
	InterviewID   int64  `json:"interviewId"`
	QuestionIndex int    `json:"questionIndex"`
	QuestionText  string `json:"questionText"`
	ResponseText  string `json:"responseText"`
	AudioURL      string `json:"audioUrl"`
	VideoURL      string `json:"videoUrl"`
	Timestamp     int64  `json:"timestamp"`
	Duration      int64  `json:"duration"`
}

func newResponse(src domain.Response) Response {
	return Response{
		ID:            src.ID,
		InterviewID:   src.InterviewID,
		QuestionIndex: src.QuestionIndex,
		QuestionText:  src.QuestionText,
		ResponseText:  src.ResponseText,
		AudioURL:      src.AudioURL,
		VideoURL:      src.VideoURL,
		Timestamp:     src.Timestamp,
		Duration:      src.Duration,
	}
}

type QA struct {
	Question string `json:"question"`
	Response string `json:"response"`
}

type Feedback struct {
	ID                        int64    `json:"id"`
	InterviewID               int64    `json:"interviewId"`
	Feedback                  string   `json:"feedback"`
	KnowledgeBasedRating      string   `json:"knowledgeBasedRating"`
	SuggestionsForImprovement []string `json:"suggestionsForImprovement"`
	OverallScore              float64  `json:"overallScore"`
	QuestionsAndResponses     []QA     `json:"questionsAndResponses"`
	Ctime                     int64    `json:"ctime"`
}

func newFeedback(src domain.Feedback) Feedback {
	return Feedback{
		ID:                        src.ID,
		InterviewID:               src.InterviewID,
		Feedback:                  src.Feedback,
		KnowledgeBasedRating:      src.KnowledgeBasedRating,
		SuggestionsForImprovement: src.SuggestionsForImprovement,
		OverallScore:              src.OverallScore,
		QuestionsAndResponses: slice.Map(src.QuestionsAndResponses, func(_ int, qa domain.QA) QA {
			return QA{Question: qa.Question, Response: qa.Response}
		}),
		Ctime: src.Ctime,
	}
}

type InterviewSummary struct {
	Interview     Interview `json:"interview"`
	QuestionCount int       `json:"questionCount"`
	ResponseCount int64     `json:"responseCount"`
	HasFeedback   bool      `json:"hasFeedback"`
	Completed     bool      `json:"completed"`
	Feedback      *Feedback `json:"feedback,omitempty"`
}

func newSummary(src domain.Summary) InterviewSummary {
	res := InterviewSummary{
		Interview:     newInterview(src.Interview),
		QuestionCount: src.QuestionCount,
		ResponseCount: src.ResponseCount,
		HasFeedback:   src.HasFeedback,
		Completed:     src.Completed(),
	}
	if src.HasFeedback {
		fb := newFeedback(src.Feedback)
		res.Feedback = &fb
	}
	return res
}

type GenerateResp struct {
	InterviewID int64 `json:"interviewId"`
	// Question 出题工作流返回的原始内容
	Question  any        `json:"question"`
	Questions []Question `json:"questions"`
	ResumeURL string     `json:"resumeUrl"`
}

type RecordResp struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ID       int64  `json:"id"`
	AudioURL string `json:"audioUrl"`
	VideoURL string `json:"videoUrl"`
}

type ErrorResp struct {
	Error string `json:"error"`
}
