// internal/handlers/media.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tab1k/tbd-back/internal/i18n"
	"github.com/tab1k/tbd-back/internal/serializers"
	"github.com/tab1k/tbd-back/internal/services"
	"github.com/tab1k/tbd-back/internal/utils"
)

// MediaHandler covers the two media-only kinds: videos and partner logos.
type MediaHandler struct {
	contentService *services.ContentService
}

func NewMediaHandler(contentService *services.ContentService) *MediaHandler {
	return &MediaHandler{contentService: contentService}
}

// GET /home/videos, GET /admin/videos
func (h *MediaHandler) ListVideos(c *gin.Context) {
	params := utils.GetPaginationParams(c, utils.ContentPageSize)

	items, total, err := h.contentService.ListVideos(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	var data interface{}
	if utils.GetCallerRole(c) == utils.CallerAdmin {
		data = serializers.NewVideoAdminList(items)
	} else {
		data = serializers.NewVideoPublicList(items, utils.GetLangFromContext(c))
	}

	result := utils.CreatePaginationResult(data, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /home/videos/:id, GET /admin/videos/:id
func (h *MediaHandler) GetVideo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid video ID", nil)
		return
	}

	item, err := h.contentService.GetVideo(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyVideoNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	if utils.GetCallerRole(c) == utils.CallerAdmin {
		utils.SuccessResponse(c, gin.H{"video": serializers.NewVideoAdmin(item)})
		return
	}
	utils.SuccessResponse(c, gin.H{"video": serializers.NewVideoPublic(item, utils.GetLangFromContext(c))})
}

// POST /admin/videos
func (h *MediaHandler) CreateVideo(c *gin.Context) {
	lang := string(utils.GetLangFromContext(c))

	var req services.VideoInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid), err.Error())
		return
	}

	item, err := h.contentService.CreateVideo(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyVideoCreated),
		"video":   serializers.NewVideoAdmin(item),
	})
}

// PATCH /admin/videos/:id
func (h *MediaHandler) UpdateVideo(c *gin.Context) {
	lang := string(utils.GetLangFromContext(c))

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid video ID", nil)
		return
	}

	var req services.VideoUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid), err.Error())
		return
	}

	item, err := h.contentService.UpdateVideo(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyVideoNotFound)
			return
		}
		if errors.Is(err, services.ErrInvalidInput) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyVideoUpdated),
		"video":   serializers.NewVideoAdmin(item),
	})
}

// DELETE /admin/videos/:id
func (h *MediaHandler) DeleteVideo(c *gin.Context) {
	lang := string(utils.GetLangFromContext(c))

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid video ID", nil)
		return
	}

	if err := h.contentService.DeleteVideo(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyVideoNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyVideoDeleted),
	})
}

// GET /home/logos, GET /admin/logos
func (h *MediaHandler) ListLogos(c *gin.Context) {
	items, err := h.contentService.ListLogos()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	if utils.GetCallerRole(c) == utils.CallerAdmin {
		utils.SuccessResponse(c, gin.H{"logos": serializers.NewLogoAdminList(items)})
		return
	}
	utils.SuccessResponse(c, gin.H{"logos": serializers.NewLogoPublicList(items, utils.GetLangFromContext(c))})
}

// GET /home/logos/:id, GET /admin/logos/:id
func (h *MediaHandler) GetLogo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid logo ID", nil)
		return
	}

	item, err := h.contentService.GetLogo(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyLogoNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	if utils.GetCallerRole(c) == utils.CallerAdmin {
		utils.SuccessResponse(c, gin.H{"logo": serializers.NewLogoAdmin(item)})
		return
	}
	utils.SuccessResponse(c, gin.H{"logo": serializers.NewLogoPublic(item, utils.GetLangFromContext(c))})
}

// POST /admin/logos
func (h *MediaHandler) CreateLogo(c *gin.Context) {
	lang := string(utils.GetLangFromContext(c))

	var req services.LogoInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid), err.Error())
		return
	}

	item, err := h.contentService.CreateLogo(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyLogoCreated),
		"logo":    serializers.NewLogoAdmin(item),
	})
}

// PATCH /admin/logos/:id
func (h *MediaHandler) UpdateLogo(c *gin.Context) {
	lang := string(utils.GetLangFromContext(c))

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid logo ID", nil)
		return
	}

	var req services.LogoUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid), err.Error())
		return
	}

	item, err := h.contentService.UpdateLogo(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyLogoNotFound)
			return
		}
		if errors.Is(err, services.ErrInvalidInput) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyLogoUpdated),
		"logo":    serializers.NewLogoAdmin(item),
	})
}

// DELETE /admin/logos/:id
func (h *MediaHandler) DeleteLogo(c *gin.Context) {
	lang := string(utils.GetLangFromContext(c))

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid logo ID", nil)
		return
	}

	if err := h.contentService.DeleteLogo(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyLogoNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyLogoDeleted),
	})
}
