package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"sponsortrack/internal/dealview"
	"sponsortrack/internal/export"
	"sponsortrack/internal/logger"
	"sponsortrack/internal/models"
	"sponsortrack/internal/pdf"
	"sponsortrack/internal/services"
)

type DealHandler struct {
	Service *services.DealService
	Reports *pdf.ReportGenerator
}

func NewDealHandler(service *services.DealService, reports *pdf.ReportGenerator) *DealHandler {
	return &DealHandler{Service: service, Reports: reports}
}

type createDealRequest struct {
	AccountID int               `json:"account_id" binding:"required,gt=0"`
	StartDate string            `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string            `json:"end_date" binding:"required,datetime=2006-01-02"`
	Value     *decimal.Decimal  `json:"value" binding:"required"`
	Status    models.DealStatus `json:"status" binding:"required,oneof=draft active expired cancelled"`
}

type updateDealRequest struct {
	AccountID *int               `json:"account_id" binding:"omitempty,gt=0"`
	StartDate *string            `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string            `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Value     *decimal.Decimal   `json:"value"`
	Status    *models.DealStatus `json:"status" binding:"omitempty,oneof=draft active expired cancelled"`
}

func (h *DealHandler) list(c *gin.Context, scope services.DealScope) {
	f, err := parseFilter(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	deals, err := h.Service.List(c.Request.Context(), scope, f)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondItems(c, http.StatusOK, "Deals retrieved successfully", deals)
}

// @Summary  Список сделок
// @Tags     Deals
// @Produce  json
// @Param    status  query     string  false  "Статус"
// @Param    year    query     int     false  "Год начала или окончания"
// @Param    search  query     string  false  "Подстрока id, account_id, статуса или суммы"
// @Success  200     {object}  ItemsResponse[[]models.Deal]
// @Failure  400     {object}  ItemResponse[string]
// @Router   /api/deals [get]
func (h *DealHandler) List(c *gin.Context) {
	h.list(c, services.DealScope{})
}

func (h *DealHandler) ListByAccount(c *gin.Context) {
	accountID, ok := pathID(c, "account_id")
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid account_id")
		return
	}
	h.list(c, services.DealScope{AccountID: accountID})
}

func (h *DealHandler) ListByOrganization(c *gin.Context) {
	orgID, ok := pathID(c, "organization_id")
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid organization_id")
		return
	}
	h.list(c, services.DealScope{OrganizationID: orgID})
}

func (h *DealHandler) ListByStatus(c *gin.Context) {
	deals, err := h.Service.ListByStatus(c.Request.Context(), models.DealStatus(c.Param("status")))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondItems(c, http.StatusOK, "Deals retrieved successfully", deals)
}

func (h *DealHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	deal, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if deal == nil {
		respondNotFound(c, "Deal not found")
		return
	}
	respondItem(c, http.StatusOK, "Deal retrieved successfully", deal)
}

// view разбирает scope и фильтр и строит представление доски.
func (h *DealHandler) view(c *gin.Context) (dealview.View, services.DealScope, bool) {
	scope, err := parseScope(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return dealview.View{}, scope, false
	}
	f, err := parseFilter(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return dealview.View{}, scope, false
	}
	v, err := h.Service.View(c.Request.Context(), scope, f)
	if err != nil {
		respondServiceError(c, err)
		return dealview.View{}, scope, false
	}
	return v, scope, true
}

// @Summary  Доска сделок: фильтр, стадии, статусы, суммы, годы
// @Tags     Deals
// @Produce  json
// @Param    organization_id  query     int     false  "Организация (приоритетнее account_id)"
// @Param    account_id       query     int     false  "Аккаунт"
// @Param    status           query     string  false  "Статус"
// @Param    year             query     int     false  "Год"
// @Param    search           query     string  false  "Поиск"
// @Success  200              {object}  ItemResponse[dealview.View]
// @Router   /api/deals/view [get]
func (h *DealHandler) View(c *gin.Context) {
	v, _, ok := h.view(c)
	if !ok {
		return
	}
	respondItem(c, http.StatusOK, "Deal view built successfully", v)
}

func (h *DealHandler) ExportXLSX(c *gin.Context) {
	v, _, ok := h.view(c)
	if !ok {
		return
	}
	book, err := export.Workbook(v)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer book.Close()

	c.Header("Content-Type", export.ContentType)
	c.Header("Content-Disposition", "attachment; filename=deals.xlsx")
	if err := book.Write(c.Writer); err != nil {
		logger.LogError(logger.Get(), "handlers", "ExportXLSX", "write workbook", nil, err)
	}
}

func (h *DealHandler) ReportPDF(c *gin.Context) {
	v, scope, ok := h.view(c)
	if !ok {
		return
	}
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "inline; filename=deals_report.pdf")
	err := h.Reports.Render(c.Writer, pdf.ReportData{
		Scope:       describeScope(scope),
		View:        v,
		GeneratedAt: time.Now(),
	})
	if err != nil {
		logger.LogError(logger.Get(), "handlers", "ReportPDF", "render report", nil, err)
	}
}

func describeScope(s services.DealScope) string {
	switch {
	case s.OrganizationID > 0:
		return fmt.Sprintf("organization #%d", s.OrganizationID)
	case s.AccountID > 0:
		return fmt.Sprintf("account #%d", s.AccountID)
	default:
		return "all deals"
	}
}

// @Summary  Создать сделку
// @Tags     Deals
// @Accept   json
// @Produce  json
// @Param    deal  body      createDealRequest  true  "Сделка"
// @Success  201   {object}  ItemResponse[models.Deal]
// @Failure  400   {object}  ItemResponse[string]
// @Failure  409   {object}  ItemResponse[string]
// @Router   /api/deals [post]
func (h *DealHandler) Create(c *gin.Context) {
	var req createDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	deal := &models.Deal{
		AccountID: req.AccountID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Value:     *req.Value,
		Status:    req.Status,
	}
	if err := h.Service.Create(c.Request.Context(), deal); err != nil {
		respondServiceError(c, err)
		return
	}
	respondItem(c, http.StatusCreated, "Deal created successfully", deal)
}

// @Summary  Частично обновить сделку
// @Tags     Deals
// @Accept   json
// @Produce  json
// @Param    id    path      int                true  "ID сделки"
// @Param    deal  body      updateDealRequest  true  "Поля для обновления"
// @Success  200   {object}  ItemResponse[models.Deal]
// @Failure  404   {object}  ItemResponse[string]
// @Router   /api/deals/{id} [put]
func (h *DealHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateDealRequest
	if err := bindPatch(c, &req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	deal, err := h.Service.Update(c.Request.Context(), id, models.DealPatch{
		AccountID: req.AccountID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Value:     req.Value,
		Status:    req.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if deal == nil {
		respondNotFound(c, "Deal not found")
		return
	}
	respondItem(c, http.StatusOK, "Deal updated successfully", deal)
}

func (h *DealHandler) Delete(c *gin.Context) {
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
		respondNotFound(c, "Deal not found")
		return
	}
	respondItem(c, http.StatusOK, "Deal deleted successfully", true)
}
