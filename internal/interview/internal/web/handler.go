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
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/interview/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

const (
	rateLimitedMsg = "Interview limit exceeded. You can only take one interview per day. Please try again tomorrow."
	blockedMsg     = "Request blocked"
	// 简历和录音录像的大小上限
	maxUploadSize = 50 << 20
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc      service.InterviewService
	genSvc   service.GenerationService
	uploader service.FileUploader
	logger   *elog.Component
}

func NewHandler(svc service.InterviewService, genSvc service.GenerationService,
	uploader service.FileUploader) *Handler {
	return &Handler{
		svc:      svc,
		genSvc:   genSvc,
		uploader: uploader,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("InterviewHandler")),
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/interview")
	g.POST("/generate", h.Generate)
	g.POST("/detail", ginx.BS[IDReq](h.Detail))
	g.POST("/list", ginx.BS[ListReq](h.List))
	g.POST("/responses", ginx.BS[InterviewIDReq](h.Responses))
	g.POST("/responses/record", h.Record)
	g.POST("/next-index", ginx.BS[InterviewIDReq](h.NextIndex))
	g.POST("/feedback/detail", ginx.BS[InterviewIDReq](h.FeedbackDetail))
}

// Generate 上传简历或者填写岗位信息出题
// 这个接口的状态码是约定好的，所以不走 ginx 的包装
func (h *Handler) Generate(ctx *gin.Context) {
	sess, err := session.Get(&ginx.Context{Context: ctx})
	if err != nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	req := service.GenerateRequest{
		Uid:            sess.Claims().Uid,
		JobTitle:       ctx.PostForm("jobTitle"),
		JobDescription: ctx.PostForm("jobDescription"),
	}
	if fh, er := ctx.FormFile("file"); er == nil {
		req.Resume, err = readFile(fh)
		if err != nil {
			h.logger.Error("读取简历失败", elog.FieldErr(err))
			ctx.JSON(http.StatusBadRequest, ErrorResp{Error: "Invalid file"})
			return
		}
	}

	interview, err := h.genSvc.Generate(ctx.Request.Context(), req)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, GenerateResp{
			InterviewID: interview.ID,
			Question:    interview.RawQuestions,
			Questions:   newInterview(interview).Questions,
			ResumeURL:   interview.ResumeURL,
		})
	case errors.Is(err, service.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, ErrorResp{Error: err.Error()})
	case errors.Is(err, service.ErrRateLimited):
		ctx.JSON(http.StatusTooManyRequests, ErrorResp{Error: rateLimitedMsg})
	case errors.Is(err, service.ErrBlocked):
		ctx.JSON(http.StatusForbidden, ErrorResp{Error: blockedMsg})
	default:
		h.logger.Error("生成面试失败", elog.FieldErr(err), elog.Int64("uid", req.Uid))
		ctx.JSON(http.StatusInternalServerError, ErrorResp{Error: "Failed to generate interview"})
	}
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	interview, err := h.ownedInterview(ctx, req.ID, sess.Claims().Uid)
	if err != nil {
		return h.interviewErrorResult(err), err
	}
	next, err := h.svc.NextQuestionIndex(ctx, interview.ID)
	if err != nil {
		return systemErrorResult, err
	}
	res := newInterview(interview)
	res.NextIndex = next
	return ginx.Result{Data: res}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	if req.AttendedOnly {
		summaries, err := h.svc.ListAttended(ctx, uid)
		if err != nil {
			return systemErrorResult, err
		}
		return ginx.Result{
			Data: ginx.DataList[InterviewSummary]{
				List:  slice.Map(summaries, func(_ int, src domain.Summary) InterviewSummary { return newSummary(src) }),
				Total: len(summaries),
			},
		}, nil
	}
	summaries, total, err := h.svc.List(ctx, uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ginx.DataList[InterviewSummary]{
			List:  slice.Map(summaries, func(_ int, src domain.Summary) InterviewSummary { return newSummary(src) }),
			Total: int(total),
		},
	}, nil
}

func (h *Handler) Responses(ctx *ginx.Context, req InterviewIDReq, sess session.Session) (ginx.Result, error) {
	if _, err := h.ownedInterview(ctx, req.InterviewID, sess.Claims().Uid); err != nil {
		return h.interviewErrorResult(err), err
	}
	responses, err := h.svc.Responses(ctx, req.InterviewID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(responses, func(_ int, src domain.Response) Response {
			return newResponse(src)
		}),
	}, nil
}

func (h *Handler) NextIndex(ctx *ginx.Context, req InterviewIDReq, sess session.Session) (ginx.Result, error) {
	if _, err := h.ownedInterview(ctx, req.InterviewID, sess.Claims().Uid); err != nil {
		return h.interviewErrorResult(err), err
	}
	next, err := h.svc.NextQuestionIndex(ctx, req.InterviewID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: next}, nil
}

func (h *Handler) FeedbackDetail(ctx *ginx.Context, req InterviewIDReq, sess session.Session) (ginx.Result, error) {
	if _, err := h.ownedInterview(ctx, req.InterviewID, sess.Claims().Uid); err != nil {
		return h.interviewErrorResult(err), err
	}
	fb, err := h.svc.Feedback(ctx, req.InterviewID)
	switch {
	case err == nil:
		return ginx.Result{Data: newFeedback(fb)}, nil
	case errors.Is(err, service.ErrFeedbackNotFound):
		return feedbackNotFoundResult, err
	default:
		return systemErrorResult, err
	}
}

// Record 直接提交一道题的回答，录音和录像是可选的
func (h *Handler) Record(ctx *gin.Context) {
	sess, err := session.Get(&ginx.Context{Context: ctx})
	if err != nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	uid := sess.Claims().Uid
	interviewID, er1 := strconv.ParseInt(ctx.PostForm("interviewId"), 10, 64)
	questionIndex, er2 := strconv.Atoi(ctx.PostForm("questionIndex"))
	questionText := strings.TrimSpace(ctx.PostForm("questionText"))
	if er1 != nil || er2 != nil || questionIndex < 0 || questionText == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResp{Error: "Missing required fields"})
		return
	}
	duration, _ := strconv.ParseFloat(ctx.PostForm("duration"), 64)

	if _, err = h.ownedInterview(ctx.Request.Context(), interviewID, uid); err != nil {
		if errors.Is(err, service.ErrInterviewNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResp{Error: "Interview not found"})
			return
		}
		h.logger.Error("查询面试失败", elog.FieldErr(err), elog.Int64("interviewId", interviewID))
		ctx.JSON(http.StatusInternalServerError, ErrorResp{Error: "Failed to record response"})
		return
	}

	resp := domain.Response{
		InterviewID:   interviewID,
		QuestionIndex: questionIndex,
		QuestionText:  questionText,
		ResponseText:  strings.TrimSpace(ctx.PostForm("responseText")),
		Uid:           uid,
		Timestamp:     time.Now().UnixMilli(),
		Duration:      int64(duration),
	}
	folder := fmt.Sprintf("interviews/%d", interviewID)
	audio, video := formBlob(ctx, "audio"), formBlob(ctx, "video")
	// 录音录像相互独立，任何一个失败都不影响回答的保存
	var eg errgroup.Group
	eg.Go(func() error {
		resp.AudioURL = h.uploadBlob(ctx.Request.Context(), "audio", folder, resp.Timestamp, audio)
		return nil
	})
	eg.Go(func() error {
		resp.VideoURL = h.uploadBlob(ctx.Request.Context(), "video", folder, resp.Timestamp, video)
		return nil
	})
	_ = eg.Wait()

	id, err := h.svc.SaveResponse(ctx.Request.Context(), resp)
	if err != nil {
		h.logger.Error("保存回答失败", elog.FieldErr(err),
			elog.Int64("interviewId", interviewID), elog.Int("questionIndex", questionIndex))
		ctx.JSON(http.StatusInternalServerError, ErrorResp{Error: "Failed to record response"})
		return
	}
	ctx.JSON(http.StatusOK, RecordResp{
		Success:  true,
		Message:  "Response recorded successfully",
		ID:       id,
		AudioURL: resp.AudioURL,
		VideoURL: resp.VideoURL,
	})
}

func formBlob(ctx *gin.Context, field string) []byte {
	fh, err := ctx.FormFile(field)
	if err != nil {
		return nil
	}
	data, err := readFile(fh)
	if err != nil {
		return nil
	}
	return data
}

func (h *Handler) uploadBlob(ctx context.Context, kind, folder string, ts int64, data []byte) string {
	if len(data) == 0 {
		return ""
	}
	name := fmt.Sprintf("%s_%d_response.webm", kind, ts)
	url, err := h.uploader.Upload(ctx, folder, name, data)
	if err != nil {
		h.logger.Error("上传录制文件失败", elog.FieldErr(err), elog.String("kind", kind), elog.String("folder", folder))
		return ""
	}
	return url
}

// ownedInterview 不属于当前用户的面试按不存在处理
func (h *Handler) ownedInterview(ctx context.Context, id, uid int64) (domain.Interview, error) {
	interview, err := h.svc.Detail(ctx, id)
	if err != nil {
		return domain.Interview{}, err
	}
	if interview.Uid != uid {
		return domain.Interview{}, service.ErrInterviewNotFound
	}
	return interview, nil
}

func (h *Handler) interviewErrorResult(err error) ginx.Result {
	if errors.Is(err, service.ErrInterviewNotFound) {
		return interviewNotFoundResult
	}
	return systemErrorResult
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > maxUploadSize {
		return nil, fmt.Errorf("文件过大: %d", fh.Size)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
