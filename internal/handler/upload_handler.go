package handler

import (
	"net/http"
	"strings"

	"puntadas/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	cloud cloudinary.Client
}

func NewUploadHandler(cloud cloudinary.Client) *UploadHandler {
	return &UploadHandler{cloud: cloud}
}

// UploadReferenceImage accepts a customer's reference photo before the
// request form is submitted. Returns the blob URL to embed in the request.
func (h *UploadHandler) UploadReferenceImage(c *gin.Context) {
	h.upload(c, "puntadas/references")
}

// UploadGalleryImage is the admin path for gallery photos.
func (h *UploadHandler) UploadGalleryImage(c *gin.Context) {
	h.upload(c, "puntadas/gallery")
}

func (h *UploadHandler) upload(c *gin.Context, folder string) {
	if h.cloud == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "uploads disabled"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	publicID := "img_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	defer f.Close()

	url, thumb, err := h.cloud.UploadImage(c.Request.Context(), f, folder, publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "thumbnail_url": thumb})
}
