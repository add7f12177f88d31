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

package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
)

type Interview struct {
	ID             int64                `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	Uid            int64                `gorm:"type:BIGINT;NOT NULL;index:idx_uid_ctime,priority:1;comment:'用户ID'"`
	Questions      sqlx.JsonColumn[any] `gorm:"type:JSON;comment:'出题工作流返回的原始题目，文本或者列表'"`
	ResumeURL      string               `gorm:"type:VARCHAR(1024);NOT NULL;default:'';comment:'简历URL，按岗位出题时为空'"`
	JobTitle       string               `gorm:"type:VARCHAR(255);NOT NULL;default:'';comment:'岗位名称'"`
	JobDescription string               `gorm:"type:TEXT;comment:'岗位描述'"`
	Status         string               `gorm:"type:VARCHAR(32);NOT NULL;default:'pending';comment:'pending, completed'"`
	Ctime          int64                `gorm:"index:idx_uid_ctime,priority:2"`
	Utime          int64
}

func (Interview) TableName() string {
	return "interviews"
}

// Response 只追加，不修改。(interview_id, question_index) 故意不加唯一索引，读的时候同一道题取最早的一条
type Response struct {
	ID            int64  `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	InterviewID   int64  `gorm:"type:BIGINT;NOT NULL;index:idx_interview_question,priority:1;comment:'面试ID'"`
	QuestionIndex int    `gorm:"type:INT;NOT NULL;index:idx_interview_question,priority:2;comment:'题目下标，从0开始'"`
	QuestionText  string `gorm:"type:TEXT;comment:'题目快照'"`
	ResponseText  string `gorm:"type:TEXT;comment:'回答文本，语音识别结果或者手动输入'"`
	AudioURL      string `gorm:"type:VARCHAR(1024);NOT NULL;default:'';comment:'录音URL'"`
	VideoURL      string `gorm:"type:VARCHAR(1024);NOT NULL;default:'';comment:'录像URL'"`
	Uid           int64  `gorm:"type:BIGINT;NOT NULL;comment:'用户ID'"`
	Timestamp     int64  `gorm:"type:BIGINT;NOT NULL;comment:'提交时间，毫秒'"`
	Duration      int64  `gorm:"type:BIGINT;NOT NULL;default:0;comment:'回答时长，秒'"`
	Ctime         int64
}

func (Response) TableName() string {
	return "interview_responses"
}

// Feedback 每次生成都插入新的一条，读取时取最早的一条
type Feedback struct {
	ID                    int64                      `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	InterviewID           int64                      `gorm:"type:BIGINT;NOT NULL;index:idx_interview_id;comment:'面试ID'"`
	Uid                   int64                      `gorm:"type:BIGINT;NOT NULL;comment:'用户ID'"`
	Feedback              string                     `gorm:"type:TEXT;comment:'总体评价'"`
	KnowledgeBasedRating  string                     `gorm:"type:VARCHAR(255);NOT NULL;default:'';comment:'知识掌握评级'"`
	Suggestions           sqlx.JsonColumn[[]string]  `gorm:"type:JSON;comment:'改进建议'"`
	OverallScore          float64                    `gorm:"type:DOUBLE;NOT NULL;default:0;comment:'总分'"`
	QuestionsAndResponses sqlx.JsonColumn[[]QAEntry] `gorm:"type:JSON;comment:'生成评估时的问答快照'"`
	Ctime                 int64
}

func (Feedback) TableName() string {
	return "interview_feedbacks"
}

type QAEntry struct {
	Question string `json:"question"`
	Response string `json:"response"`
}

type ResponseCount struct {
	InterviewID int64
	Cnt         int64
}

//go:generate mockgen -source=./interview.go -package=daomocks -destination=mocks/interview.mock.go InterviewDAO
type InterviewDAO interface {
	Create(ctx context.Context, interview Interview) (int64, error)
	FindByID(ctx context.Context, id int64) (Interview, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	FindByUid(ctx context.Context, uid int64, offset, limit int) ([]Interview, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)

	CreateResponse(ctx context.Context, resp Response) (int64, error)
	FindResponses(ctx context.Context, interviewID int64) ([]Response, error)
	MaxQuestionIndex(ctx context.Context, interviewID int64) (sql.NullInt64, error)
	CountResponses(ctx context.Context, interviewIDs []int64) ([]ResponseCount, error)

	CreateFeedback(ctx context.Context, fb Feedback) (int64, error)
	FirstFeedback(ctx context.Context, interviewID int64) (Feedback, error)
	FindFeedbacks(ctx context.Context, interviewIDs []int64) ([]Feedback, error)
}

type GORMInterviewDAO struct {
	db *egorm.Component
}

func NewGORMInterviewDAO(db *egorm.Component) InterviewDAO {
	return &GORMInterviewDAO{db: db}
}

func (g *GORMInterviewDAO) Create(ctx context.Context, interview Interview) (int64, error) {
	now := time.Now().UnixMilli()
	interview.Ctime = now
	interview.Utime = now
	err := g.db.WithContext(ctx).Create(&interview).Error
	return interview.ID, err
}

func (g *GORMInterviewDAO) FindByID(ctx context.Context, id int64) (Interview, error) {
	var res Interview
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	return g.db.WithContext(ctx).Model(&Interview{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (g *GORMInterviewDAO) FindByUid(ctx context.Context, uid int64, offset, limit int) ([]Interview, error) {
	var res []Interview
	err := g.db.WithContext(ctx).Where("uid = ?", uid).
		Order("ctime DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) CountByUid(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Interview{}).Where("uid = ?", uid).Count(&count).Error
	return count, err
}

func (g *GORMInterviewDAO) CreateResponse(ctx context.Context, resp Response) (int64, error) {
	resp.Ctime = time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Create(&resp).Error
	return resp.ID, err
}

func (g *GORMInterviewDAO) FindResponses(ctx context.Context, interviewID int64) ([]Response, error) {
	var res []Response
	err := g.db.WithContext(ctx).Where("interview_id = ?", interviewID).
		Order("question_index ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) MaxQuestionIndex(ctx context.Context, interviewID int64) (sql.NullInt64, error) {
	var res sql.NullInt64
	err := g.db.WithContext(ctx).Model(&Response{}).
		Select("MAX(question_index)").
		Where("interview_id = ?", interviewID).
		Row().Scan(&res)
	return res, err
}

func (g *GORMInterviewDAO) CountResponses(ctx context.Context, interviewIDs []int64) ([]ResponseCount, error) {
	var res []ResponseCount
	if len(interviewIDs) == 0 {
		return res, nil
	}
	// 同一道题的重复回答只算一次
	err := g.db.WithContext(ctx).Model(&Response{}).
		Select("interview_id, COUNT(DISTINCT question_index) AS cnt").
		Where("interview_id IN ?", interviewIDs).
		Group("interview_id").
		Scan(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) CreateFeedback(ctx context.Context, fb Feedback) (int64, error) {
	fb.Ctime = time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Create(&fb).Error
	return fb.ID, err
}

func (g *GORMInterviewDAO) FirstFeedback(ctx context.Context, interviewID int64) (Feedback, error) {
	var res Feedback
	err := g.db.WithContext(ctx).Where("interview_id = ?", interviewID).
		Order("id ASC").
		First(&res).Error
	return res, err
}

func (g *GORMInterviewDAO) FindFeedbacks(ctx context.Context, interviewIDs []int64) ([]Feedback, error) {
	var res []Feedback
	if len(interviewIDs) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Where("interview_id IN ?", interviewIDs).
		Order("id ASC").
		Find(&res).Error
	return res, err
}
