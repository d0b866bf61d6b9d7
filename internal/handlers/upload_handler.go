package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hopeactionjeunesse/hope-site/internal/audit"
	"github.com/hopeactionjeunesse/hope-site/internal/httperr"
	"github.com/hopeactionjeunesse/hope-site/internal/httpresp"
	"github.com/hopeactionjeunesse/hope-site/internal/usecase/media"
	"github.com/hopeactionjeunesse/hope-site/internal/validators"
)

type UploadHandler struct {
	upload   *media.UploadImage
	delete   *media.DeleteImage
	audit    *audit.Dispatcher
	maxBytes int64
}

func NewUploadHandler(
	upload *media.UploadImage,
	del *media.DeleteImage,
	audit *audit.Dispatcher,
	maxBytes int64,
) *UploadHandler {
	return &UploadHandler{upload: upload, delete: del, audit: audit, maxBytes: maxBytes}
}

type UploadImageRequest struct {
	FileBase64 string `json:"fileBase64" binding:"required"`
	Folder     string `json:"folder" binding:"required,oneof=services projects team"`
}

type DeleteImageRequest struct {
	URL string `json:"url" binding:"required"`
}

func (h *UploadHandler) Image(c *gin.Context) {
	var req UploadImageRequest
	if !bindJSON(c, &req) {
		return
	}

	data, err := validators.DecodeImagePayload(req.FileBase64, h.maxBytes)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	res, err := h.upload.Execute(c.Request.Context(), data, req.Folder)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    actor(c),
		Action:   "image_uploaded",
		Entity:   "image",
		Metadata: map[string]any{"key": res.Key, "bytes": len(data)},
	})
	httpresp.OK(c, res)
}

func (h *UploadHandler) DeleteImage(c *gin.Context) {
	var req DeleteImageRequest
	if !bindJSON(c, &req) {
		return
	}

	deleted, err := h.delete.Execute(c.Request.Context(), req.URL)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	if deleted {
		h.audit.Dispatch(audit.Event{
			Actor:    actor(c),
			Action:   "image_deleted",
			Entity:   "image",
			Metadata: map[string]any{"url": req.URL},
		})
	}
	httpresp.OK(c, gin.H{"success": true, "deleted": deleted})
}
