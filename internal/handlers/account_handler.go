package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sponsortrack/internal/models"
	"sponsortrack/internal/services"
)

type AccountHandler struct {
	Service *services.AccountService
}

func NewAccountHandler(service *services.AccountService) *AccountHandler {
	return &AccountHandler{Service: service}
}

type createAccountRequest struct {
	OrganizationID int    `json:"organization_id" binding:"required,gt=0"`
	Name           string `json:"name" binding:"required"`
	ContactEmail   string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone   string `json:"contact_phone"`
}

type updateAccountRequest struct {
	OrganizationID *int    `json:"organization_id" binding:"omitempty,gt=0"`
	Name           *string `json:"name"`
	ContactEmail   *string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone   *string `json:"contact_phone"`
}

func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.Service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondItems(c, http.StatusOK, "Accounts retrieved successfully", accounts)
}

func (h *AccountHandler) ListByOrganization(c *gin.Context) {
	orgID, ok := pathID(c, "organization_id")
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid organization_id")
		return
	}
	accounts, err := h.Service.ListByOrganization(c.Request.Context(), orgID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondItems(c, http.StatusOK, "Accounts retrieved successfully", accounts)
}

func (h *AccountHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	account, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if account == nil {
		respondNotFound(c, "Account not found")
		return
	}
	respondItem(c, http.StatusOK, "Account retrieved successfully", account)
}

func (h *AccountHandler) Create(c *gin.Context) {
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	account := &models.Account{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
	}
	if err := h.Service.Create(c.Request.Context(), account); err != nil {
		respondServiceError(c, err)
		return
	}
	respondItem(c, http.StatusCreated, "Account created successfully", account)
}

func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateAccountRequest
	if err := bindPatch(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	account, err := h.Service.Update(c.Request.Context(), id, models.AccountPatch{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if account == nil {
		respondNotFound(c, "Account not found")
		return
	}
	respondItem(c, http.StatusOK, "Account updated successfully", account)
}

func (h *AccountHandler) Delete(c *gin.Context) {
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
		respondNotFound(c, "Account not found")
		return
	}
	respondItem(c, http.StatusOK, "Account deleted successfully", true)
}
