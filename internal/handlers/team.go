// internal/handlers/team.go
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

type TeamHandler struct {
	contentService *services.ContentService
}

func NewTeamHandler(contentService *services.ContentService) *TeamHandler {
	return &TeamHandler{contentService: contentService}
}

// GET /home/team, GET /admin/team
func (h *TeamHandler) List(c *gin.Context) {
	items, err := h.contentService.ListTeam()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	if utils.GetCallerRole(c) == utils.CallerAdmin {
		utils.SuccessResponse(c, gin.H{"team": serializers.NewTeamAdminList(items)})
		return
	}
	utils.SuccessResponse(c, gin.H{"team": serializers.NewTeamPublicList(items, utils.GetLangFromContext(c))})
}

// GET /home/team/:id, GET /admin/team/:id
func (h *TeamHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid team member ID", nil)
		return
	}

	item, err := h.contentService.GetTeamMember(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyTeamNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	if utils.GetCallerRole(c) == utils.CallerAdmin {
		utils.SuccessResponse(c, gin.H{"member": serializers.NewTeamAdmin(item)})
		return
	}
	utils.SuccessResponse(c, gin.H{"member": serializers.NewTeamPublic(item, utils.GetLangFromContext(c))})
}

// POST /admin/team
func (h *TeamHandler) Create(c *gin.Context) {
	lang := string(utils.GetLangFromContext(c))

	var req services.TeamInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid), err.Error())
		return
	}

	item, err := h.contentService.CreateTeamMember(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyTeamCreated),
		"member":  serializers.NewTeamAdmin(item),
	})
}

// PATCH /admin/team/:id
func (h *TeamHandler) Update(c *gin.Context) {
	lang := string(utils.GetLangFromContext(c))

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid team member ID", nil)
		return
	}

	var req services.TeamUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid), err.Error())
		return
	}

	item, err := h.contentService.UpdateTeamMember(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyTeamNotFound)
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
		"message": i18n.T(lang, i18n.KeyTeamUpdated),
		"member":  serializers.NewTeamAdmin(item),
	})
}

// DELETE /admin/team/:id
func (h *TeamHandler) Delete(c *gin.Context) {
	lang := string(utils.GetLangFromContext(c))

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid team member ID", nil)
		return
	}

	if err := h.contentService.DeleteTeamMember(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.NotFoundResponse(c, i18n.KeyTeamNotFound)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyTeamDeleted),
	})
}
