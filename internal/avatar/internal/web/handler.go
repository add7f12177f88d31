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
	"github.com/ecodeclub/mockinterview/internal/avatar/internal/service"
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
		logger: elog.DefaultLogger.With(elog.FieldComponent("AvatarHandler")),
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/avatar")
	g.POST("/talks", h.CreateTalk)
	g.GET("/talks", h.GetTalk)
}

// CreateTalk 402 表示数字人额度不足，前端据此降级为纯文本
func (h *Handler) CreateTalk(ctx *gin.Context) {
	var req CreateTalkReq
	if err := ctx.Bind(&req); err != nil {
		return
	}
	res, err := h.svc.Request(ctx.Request.Context(), req.Text, req.SessionID)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, CreateTalkResp{ResultURL: res.ResultURL, TalkID: res.TalkID})
	case errors.Is(err, service.ErrInvalidInput):
		ctx.JSON(http.StatusBadRequest, ErrorResp{Error: "Text missing"})
	case errors.Is(err, service.ErrInsufficientCredits):
		ctx.JSON(http.StatusPaymentRequired, ErrorResp{Error: "Insufficient credits"})
	default:
		ctx.JSON(http.StatusInternalServerError, ErrorResp{Error: "Failed to generate video"})
	}
}

func (h *Handler) GetTalk(ctx *gin.Context) {
	talkID := ctx.Query("talkId")
	if talkID == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResp{Error: "Talk ID missing"})
		return
	}
	talk, err := h.svc.Status(ctx.Request.Context(), talkID)
	if err != nil {
		h.logger.Error("查询数字人任务失败", elog.FieldErr(err), elog.String("talkId", talkID))
		ctx.JSON(http.StatusInternalServerError, ErrorResp{Error: "Status check failed"})
		return
	}
	ctx.JSON(http.StatusOK, TalkVO{
		TalkID:    talkID,
		Status:    talk.Status.String(),
		ResultURL: talk.ResultURL,
		Duration:  talk.Duration,
		CreatedAt: talk.CreatedAt,
	})
}
