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

// NoResponse 没有回答的题目在评估时用这个占位
const NoResponse = "No response provided"

// QA 送去评估的一问一答
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Review 评估服务给出的结果
type Review struct {
	Feedback                  string
	KnowledgeBasedRating      string
	SuggestionsForImprovement []string
	OverallScore              float64
}
