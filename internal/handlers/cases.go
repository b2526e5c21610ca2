// internal/handlers/cases.go
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

type CaseHandler struct {
	contentService *services.ContentService
}

func NewCaseHandler(contentService *services.ContentService) *CaseHandler {
	return &CaseHandler{contentService: contentService}
}

// GET /home/cases, GET /admin/cases
func (h *CaseHandler) List(c *gin.Context) {
	items, err := h.contentService.ListCases()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	if utils.GetCallerRole(c) == utils.CallerAdmin {
		utils.SuccessResponse(c, gin.H{"cases": serializers.NewCaseAdminList(items)})
		return
	}
	utils.SuccessResponse(c, gin.H{"cases": serializers.NewCasePublicList(items, utils.GetLangFromContext(c))})
}

// GET /home/cases/:id, GET /admin/cases/:id
func (h *CaseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid case ID", nil)
		return
	}

	item, err := h.contentService.GetCase(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyCaseNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	if utils.GetCallerRole(c) == utils.CallerAdmin {
		utils.SuccessResponse(c, gin.H{"case": serializers.NewCaseAdmin(item)})
		return
	}
	utils.SuccessResponse(c, gin.H{"case": serializers.NewCasePublic(item, utils.GetLangFromContext(c))})
}

// POST /admin/cases
func (h *CaseHandler) Create(c *gin.Context) {
	lang := string(utils.GetLangFromContext(c))

	var req services.CaseInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid), err.Error())
		return
	}

	item, err := h.contentService.CreateCase(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCaseCreated),
		"case":    serializers.NewCaseAdmin(item),
	})
}

// PATCH /admin/cases/:id
func (h *CaseHandler) Update(c *gin.Context) {
	lang := string(utils.GetLangFromContext(c))

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid case ID", nil)
		return
	}

	var req services.CaseUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid), err.Error())
		return
	}

	item, err := h.contentService.UpdateCase(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyCaseNotFound)
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
		"message": i18n.T(lang, i18n.KeyCaseUpdated),
		"case":    serializers.NewCaseAdmin(item),
	})
}

// DELETE /admin/cases/:id
func (h *CaseHandler) Delete(c *gin.Context) {
	lang := string(utils.GetLangFromContext(c))

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid case ID", nil)
		return
	}

	if err := h.contentService.DeleteCase(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyCaseNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCaseDeleted),
	})
}

// POST /admin/cases/:id/images
func (h *CaseHandler) AddImage(c *gin.Context) {
	lang := string(utils.GetLangFromContext(c))

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid case ID", nil)
		return
	}

	var req struct {
		Image string `json:"image"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid), err.Error())
		return
	}

	img, err := h.contentService.AddCaseImage(id, req.Image)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyCaseNotFound)
			return
		}
		if errors.Is(err, services.ErrInvalidInput) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"image": img,
	})
}

// DELETE /admin/cases/:id/images/:image_id
func (h *CaseHandler) DeleteImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid case ID", nil)
		return
	}

	imageID, err := uuid.Parse(c.Param("image_id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid image ID", nil)
		return
	}

	if err := h.contentService.DeleteCaseImage(id, imageID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyCaseNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"deleted": true,
	})
}
