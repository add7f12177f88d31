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
	"io"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mockinterview/internal/media/internal/domain"
	"github.com/ecodeclub/mockinterview/internal/media/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	defaultFolder = "interviews"
	maxFileSize   = 50 << 20
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	storage service.Storage
	credSvc service.CredentialService
	logger  *elog.Component
}

func NewHandler(storage service.Storage, credSvc service.CredentialService) *Handler {
	return &Handler{
		storage: storage,
		credSvc: credSvc,
		logger:  elog.DefaultLogger.With(elog.FieldComponent("MediaHandler")),
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/media")
	g.POST("/upload", h.Upload)
	g.POST("/credentials", ginx.BS[TmpAuthCodeReq](h.TempAuthCode))
}

// Upload 经过服务端中转上传到 ImageKit
func (h *Handler) Upload(ctx *gin.Context) {
	fh, err := ctx.FormFile("file")
	if err != nil || fh.Size == 0 {
		ctx.JSON(http.StatusBadRequest, UploadResp{Error: "No file provided"})
		return
	}
	if fh.Size > maxFileSize {
		ctx.JSON(http.StatusBadRequest, UploadResp{Error: "File too large"})
		return
	}
	folder := ctx.DefaultPostForm("folder", defaultFolder)
	if folder == "" {
		folder = defaultFolder
	}
	f, err := fh.Open()
	if err != nil {
		h.logger.Error("打开上传文件失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, UploadResp{Error: "Failed to upload file"})
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		h.logger.Error("读取上传文件失败", elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, UploadResp{Error: "Failed to upload file"})
		return
	}
	stored, err := h.storage.Upload(ctx.Request.Context(), domain.UploadObject{
		Folder: folder,
		Name:   fh.Filename,
		Data:   data,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmptyFile) {
			ctx.JSON(http.StatusBadRequest, UploadResp{Error: "No file provided"})
			return
		}
		h.logger.Error("上传文件失败", elog.FieldErr(err), elog.String("folder", folder))
		ctx.JSON(http.StatusInternalServerError, UploadResp{Error: "Failed to upload file"})
		return
	}
	ctx.JSON(http.StatusOK, UploadResp{
		Success: true,
		URL:     stored.URL,
		FileID:  stored.FileID,
		Name:    stored.Name,
		Size:    stored.Size,
	})
}

func (h *Handler) TempAuthCode(ctx *ginx.Context, req TmpAuthCodeReq, sess session.Session) (ginx.Result, error) {
	res, err := h.credSvc.Issue(ctx, sess.Claims().Uid, req.Key, req.Type)
	switch {
	case err == nil:
		return ginx.Result{
			Data: COSTmpAuthCode{
				SecretId:     res.SecretID,
				SecretKey:    res.SecretKey,
				SessionToken: res.SessionToken,
				StartTime:    res.StartTime,
				ExpiredTime:  res.ExpiredTime,
				Bucket:       res.Bucket,
				Region:       res.Region,
			},
		}, nil
	case errors.Is(err, service.ErrKeyNotAllowed):
		return keyNotAllowedResult, err
	default:
		return systemErrorResult, err
	}
}
