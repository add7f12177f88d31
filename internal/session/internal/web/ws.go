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
	"net/http"
	"sync"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mockinterview/internal/session/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/gotomicro/ego/core/elog"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsReadLimit    = 64 << 10
)

var errUnknownCommand = errors.New("未知的指令")

// wsConn gorilla 的连接不支持并发写
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *wsConn) write(msg WsMessage) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	return w.conn.WriteJSON(msg)
}

func (w *wsConn) close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session ended"),
		time.Now().Add(wsWriteTimeout))
}

// WebSocket 推送会话状态，同时接收客户端的指令。会话结束后服务端关闭连接
func (h *Handler) WebSocket(ctx *gin.Context) {
	sess, err := session.Get(&ginx.Context{Context: ctx})
	if err != nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	c, err := h.registry.Get(ctx.Query("sessionId"), sess.Claims().Uid)
	if err != nil {
		ctx.JSON(http.StatusNotFound, sessionNotFoundResult)
		return
	}
	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.logger.Warn("升级 websocket 失败", elog.FieldErr(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(wsReadLimit)

	ws := &wsConn{conn: conn}
	snaps, unsubscribe := c.Subscribe()
	defer unsubscribe()
	go func() {
		// 连接断开的时候取消订阅，下面的循环随之退出
		defer unsubscribe()
		h.readCommands(ws, c)
	}()
	for snap := range snaps {
		vo := newSession(snap)
		if err = ws.write(WsMessage{Type: "state", Session: &vo}); err != nil {
			return
		}
	}
	ws.close()
}

func (h *Handler) readCommands(ws *wsConn, c *service.Controller) {
	ctx := context.Background()
	for {
		var cmd WsCommand
		if err := ws.conn.ReadJSON(&cmd); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.Debug("读取 websocket 指令结束", elog.FieldErr(err), elog.String("sessionId", c.ID()))
			}
			return
		}
		if err := h.handleCommand(ctx, c, cmd); err != nil {
			if ws.write(WsMessage{Type: "error", Msg: errorResult(err).Msg}) != nil {
				return
			}
		}
	}
}

func (h *Handler) handleCommand(ctx context.Context, c *service.Controller, cmd WsCommand) error {
	switch cmd.Type {
	case "transcript":
		return c.AppendTranscript(ctx, cmd.Text)
	case "draft":
		return c.UpdateDraft(ctx, cmd.Text)
	case "avatar_ended":
		return c.AvatarFinished(ctx)
	case "stop":
		return c.Stop(ctx, cmd.Text)
	case "leave":
		defer h.registry.Remove(c.ID())
		return c.Leave(ctx)
	default:
		return errUnknownCommand
	}
}
