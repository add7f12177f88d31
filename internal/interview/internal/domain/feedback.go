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

// Feedback 面试结束后的评估，快照了当时所有的问答
type Feedback struct {
	ID                        int64
	InterviewID               int64
	Uid                       int64
	Feedback                  string
	KnowledgeBasedRating      string
	SuggestionsForImprovement []string
	OverallScore              float64
	QuestionsAndResponses     []QA
	Ctime                     int64
}

type QA struct {
	Question string `json:"question"`
	Response string `json:"response"`
}
