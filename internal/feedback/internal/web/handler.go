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
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mockinterview/internal/feedback/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger.With(elog.FieldComponent("FeedbackHandler")),
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/feedback", h.Generate)
}

func (h *Handler) Generate(ctx *gin.Context) {
	sess, err := session.Get(&ginx.Context{Context: ctx})
	if err != nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	var req GenerateReq
	if err = ctx.ShouldBindJSON(&req); err != nil || req.InterviewID <= 0 || req.UserID <= 0 {
		ctx.JSON(http.StatusBadRequest, GenerateResp{Error: "Missing interviewId or userId"})
		return
	}
	uid := sess.Claims().Uid
	if req.UserID != uid {
		ctx.JSON(http.StatusNotFound, GenerateResp{Error: "Interview data not found"})
		return
	}
	fb, err := h.svc.Generate(ctx.Request.Context(), req.InterviewID, uid)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, GenerateResp{
			Success:        true,
			Feedback:       newReview(fb),
			TotalQuestions: len(fb.QuestionsAndResponses),
			InterviewID:    req.InterviewID,
			UserID:         req.UserID,
		})
	case errors.Is(err, service.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, GenerateResp{Error: "Missing interviewId or userId"})
	case errors.Is(err, service.ErrInterviewNotFound):
		ctx.JSON(http.StatusNotFound, GenerateResp{Error: "Interview data not found"})
	default:
		h.logger.Error("生成面试评估失败", elog.FieldErr(err), elog.Int64("interviewId", req.InterviewID))
		ctx.JSON(http.StatusInternalServerError, GenerateResp{Error: "Failed to process feedback"})
	}
}
