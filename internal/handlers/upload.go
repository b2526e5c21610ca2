// internal/handlers/upload.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tab1k/tbd-back/internal/services"
	"github.com/tab1k/tbd-back/internal/utils"
)

// UploadHandler accepts admin media uploads and returns storage keys the
// content endpoints reference by string.
type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{storageService: storageService}
}

// POST /admin/upload/:category
func (h *UploadHandler) Upload(c *gin.Context) {
	category := c.Param("category")
	options := h.storageService.GetDefaultUploadOptions(category)

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, "Invalid multipart form", err.Error())
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		utils.BadRequestResponse(c, "No files uploaded", nil)
		return
	}

	var uploaded []services.UploadResult
	var failed []string

	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			failed = append(failed, fileHeader.Filename)
			continue
		}

		// Videos skip the image signature check
		if category != "videos" && !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".svg") {
			if err := h.storageService.ValidateImage(file); err != nil {
				file.Close()
				failed = append(failed, fileHeader.Filename)
				continue
			}
		}

		result, err := h.storageService.UploadFile(file, fileHeader, options)
		file.Close()
		if err != nil {
			failed = append(failed, fileHeader.Filename)
			continue
		}
		uploaded = append(uploaded, *result)
	}

	utils.SuccessResponse(c, gin.H{
		"uploaded": uploaded,
		"failed":   failed,
	})
}
