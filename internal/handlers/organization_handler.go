package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sponsortrack/internal/models"
	"sponsortrack/internal/services"
)

type OrganizationHandler struct {
	Service *services.OrganizationService
}

func NewOrganizationHandler(service *services.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{Service: service}
}

type createOrganizationRequest struct {
	Name string `json:"name" binding:"required"`
}

type updateOrganizationRequest struct {
	Name *string `json:"name"`
}

// Welcome отвечает на корневой маршрут списком организаций.
func (h *OrganizationHandler) Welcome(c *gin.Context) {
	orgs, err := h.Service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the sponsorship deals API",
		"rows":    orgs,
	})
}

// @Summary  Список организаций
// @Tags     Organizations
// @Produce  json
// @Success  200  {object}  ItemsResponse[[]models.Organization]
// @Router   /api/organizations [get]
func (h *OrganizationHandler) List(c *gin.Context) {
	orgs, err := h.Service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondItems(c, http.StatusOK, "Organizations retrieved successfully", orgs)
}

// @Summary  Организация по id
// @Tags     Organizations
// @Produce  json
// @Param    id   path      int  true  "ID организации"
// @Success  200  {object}  ItemResponse[models.Organization]
// @Failure  404  {object}  ItemResponse[string]
// @Router   /api/organizations/{id} [get]
func (h *OrganizationHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	org, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if org == nil {
		respondNotFound(c, "Organization not found")
		return
	}
	respondItem(c, http.StatusOK, "Organization retrieved successfully", org)
}

// @Summary  Создать организацию
// @Tags     Organizations
// @Accept   json
// @Produce  json
// @Param    organization  body      createOrganizationRequest  true  "Организация"
// @Success  201           {object}  ItemResponse[models.Organization]
// @Failure  400           {object}  ItemResponse[string]
// @Router   /api/organizations [post]
func (h *OrganizationHandler) Create(c *gin.Context) {
	var req createOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	org := &models.Organization{Name: req.Name}
	if err := h.Service.Create(c.Request.Context(), org); err != nil {
		respondServiceError(c, err)
		return
	}
	respondItem(c, http.StatusCreated, "Organization created successfully", org)
}

// @Summary  Частично обновить организацию
// @Tags     Organizations
// @Accept   json
// @Produce  json
// @Param    id            path      int                        true  "ID организации"
// @Param    organization  body      updateOrganizationRequest  true  "Поля для обновления"
// @Success  200           {object}  ItemResponse[models.Organization]
// @Router   /api/organizations/{id} [put]
func (h *OrganizationHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateOrganizationRequest
	if err := bindPatch(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	org, err := h.Service.Update(c.Request.Context(), id, models.OrganizationPatch{Name: req.Name})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if org == nil {
		respondNotFound(c, "Organization not found")
		return
	}
	respondItem(c, http.StatusOK, "Organization updated successfully", org)
}

// @Summary  Удалить организацию
// @Tags     Organizations
// @Param    id   path  int  true  "ID организации"
// @Success  200  {object}  ItemResponse[bool]
// @Failure  409  {object}  ItemResponse[string]
// @Router   /api/organizations/{id} [delete]
func (h *OrganizationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	deleted, err := h.Service.Delete(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !deleted {
		respondNotFound(c, "Organization not found")
		return
	}
	respondItem(c, http.StatusOK, "Organization deleted successfully", true)
}
