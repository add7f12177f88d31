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
	"io"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mockinterview/internal/session/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/session/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/gotomicro/ego/core/elog"
)

// 单个分片的上限，客户端应该按秒切片上传
const maxChunkSize = 10 << 20

var _ ginx.Handler = &Handler{}

type Handler struct {
	registry *service.Registry
	upgrader websocket.Upgrader
	logger   *elog.Component
}

func NewHandler(registry *service.Registry) *Handler {
	return &Handler{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// 跨域由 gin 的 cors 中间件处理
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: elog.DefaultLogger.With(elog.FieldComponent("SessionHandler")),
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/sessions")
	g.POST("/start", ginx.BS[StartReq](h.Start))
	g.POST("/permissions", ginx.BS[PermissionsReq](h.Permissions))
	g.POST("/transcript", ginx.BS[TranscriptReq](h.Transcript))
	g.POST("/media", h.Media)
	g.POST("/avatar-ended", ginx.BS[SessionReq](h.AvatarEnded))
	g.POST("/stop", ginx.BS[StopReq](h.Stop))
	g.POST("/leave", ginx.BS[SessionReq](h.Leave))
	g.POST("/state", ginx.BS[SessionReq](h.State))
	g.GET("/ws", h.WebSocket)
}

// Start 创建会话并加载面试，返回的时候已经在等待授权或者已经结束
func (h *Handler) Start(ctx *ginx.Context, req StartReq, sess session.Session) (ginx.Result, error) {
	if req.InterviewID <= 0 {
		return invalidInputResult, nil
	}
	c := h.registry.Create(req.InterviewID, sess.Claims().Uid)
	if err := c.Start(ctx.Request.Context()); err != nil {
		h.registry.Remove(c.ID())
		_ = c.Leave(context.WithoutCancel(ctx.Request.Context()))
		return errorResult(err), err
	}
	return ginx.Result{Data: newSession(c.Snapshot())}, nil
}

func (h *Handler) Permissions(ctx *ginx.Context, req PermissionsReq, sess session.Session) (ginx.Result, error) {
	return h.apply(ctx, req.SessionID, sess, func(c *service.Controller) error {
		return c.GrantPermissions(ctx.Request.Context(), domain.Permissions{Audio: req.Audio, Video: req.Video})
	})
}

func (h *Handler) Transcript(ctx *ginx.Context, req TranscriptReq, sess session.Session) (ginx.Result, error) {
	return h.apply(ctx, req.SessionID, sess, func(c *service.Controller) error {
		if req.Manual {
			return c.UpdateDraft(ctx.Request.Context(), req.Text)
		}
		return c.AppendTranscript(ctx.Request.Context(), req.Text)
	})
}

// AvatarEnded 前端播放完数字人视频
func (h *Handler) AvatarEnded(ctx *ginx.Context, req SessionReq, sess session.Session) (ginx.Result, error) {
	return h.apply(ctx, req.SessionID, sess, func(c *service.Controller) error {
		return c.AvatarFinished(ctx.Request.Context())
	})
}

func (h *Handler) Stop(ctx *ginx.Context, req StopReq, sess session.Session) (ginx.Result, error) {
	return h.apply(ctx, req.SessionID, sess, func(c *service.Controller) error {
		return c.Stop(ctx.Request.Context(), req.Text)
	})
}

func (h *Handler) Leave(ctx *ginx.Context, req SessionReq, sess session.Session) (ginx.Result, error) {
	return h.apply(ctx, req.SessionID, sess, func(c *service.Controller) error {
		defer h.registry.Remove(c.ID())
		return c.Leave(ctx.Request.Context())
	})
}

func (h *Handler) State(ctx *ginx.Context, req SessionReq, sess session.Session) (ginx.Result, error) {
	return h.apply(ctx, req.SessionID, sess, func(c *service.Controller) error {
		return nil
	})
}

// apply 找到当前用户的会话，执行操作之后返回最新的状态
func (h *Handler) apply(ctx *ginx.Context, sessionID string, sess session.Session,
	fn func(c *service.Controller) error) (ginx.Result, error) {
	c, err := h.registry.Get(sessionID, sess.Claims().Uid)
	if err != nil {
		return sessionNotFoundResult, err
	}
	if err = fn(c); err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: newSession(c.Snapshot())}, nil
}

// Media 客户端录制的分片，multipart 表单里 sessionId, kind, chunk 三个字段
func (h *Handler) Media(ctx *gin.Context) {
	sess, err := session.Get(&ginx.Context{Context: ctx})
	if err != nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	c, err := h.registry.Get(ctx.PostForm("sessionId"), sess.Claims().Uid)
	if err != nil {
		ctx.JSON(http.StatusOK, sessionNotFoundResult)
		return
	}
	fh, err := ctx.FormFile("chunk")
	if err != nil || fh.Size == 0 || fh.Size > maxChunkSize {
		ctx.JSON(http.StatusOK, invalidInputResult)
		return
	}
	f, err := fh.Open()
	if err != nil {
		h.logger.Error("打开录制分片失败", elog.FieldErr(err))
		ctx.JSON(http.StatusOK, systemErrorResult)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		h.logger.Error("读取录制分片失败", elog.FieldErr(err))
		ctx.JSON(http.StatusOK, systemErrorResult)
		return
	}
	err = c.AppendMedia(ctx.Request.Context(), domain.MediaKind(ctx.PostForm("kind")), data)
	if err != nil {
		res := errorResult(err)
		if res.Code == systemErrorResult.Code {
			h.logger.Error("保存录制分片失败", elog.FieldErr(err), elog.String("sessionId", c.ID()))
		}
		ctx.JSON(http.StatusOK, res)
		return
	}
	ctx.JSON(http.StatusOK, ginx.Result{Data: newSession(c.Snapshot())})
}
