// internal/handlers/news.go
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

// NewsHandler serves both the public feed and the admin CRUD surface.
// The projection is chosen by the caller role recorded at the auth boundary,
// never by inspecting the request path.
type NewsHandler struct {
	contentService *services.ContentService
}

func NewNewsHandler(contentService *services.ContentService) *NewsHandler {
	return &NewsHandler{contentService: contentService}
}

// GET /home/news, GET /admin/news
func (h *NewsHandler) List(c *gin.Context) {
	params := utils.GetPaginationParams(c, utils.ContentPageSize)

	items, total, err := h.contentService.ListNews(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	var data interface{}
	if utils.GetCallerRole(c) == utils.CallerAdmin {
		data = serializers.NewNewsAdminList(items)
	} else {
		data = serializers.NewNewsPublicList(items, utils.GetLangFromContext(c))
	}

	result := utils.CreatePaginationResult(data, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /home/news/:id, GET /admin/news/:id
func (h *NewsHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid news ID", nil)
		return
	}

	item, err := h.contentService.GetNews(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyNewsNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	if utils.GetCallerRole(c) == utils.CallerAdmin {
		utils.SuccessResponse(c, gin.H{"news": serializers.NewNewsAdmin(item)})
		return
	}
	utils.SuccessResponse(c, gin.H{"news": serializers.NewNewsPublic(item, utils.GetLangFromContext(c))})
}

// POST /admin/news
func (h *NewsHandler) Create(c *gin.Context) {
	lang := string(utils.GetLangFromContext(c))

	var req services.NewsInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid), err.Error())
		return
	}

	item, err := h.contentService.CreateNews(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyNewsCreated),
		"news":    serializers.NewNewsAdmin(item),
	})
}

// PATCH /admin/news/:id
func (h *NewsHandler) Update(c *gin.Context) {
	lang := string(utils.GetLangFromContext(c))

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid news ID", nil)
		return
	}

	var req services.NewsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid), err.Error())
		return
	}

	item, err := h.contentService.UpdateNews(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyNewsNotFound)
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
		"message": i18n.T(lang, i18n.KeyNewsUpdated),
		"news":    serializers.NewNewsAdmin(item),
	})
}

// DELETE /admin/news/:id
func (h *NewsHandler) Delete(c *gin.Context) {
	lang := string(utils.GetLangFromContext(c))

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid news ID", nil)
		return
	}

	if err := h.contentService.DeleteNews(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyNewsNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyNewsDeleted),
	})
}
