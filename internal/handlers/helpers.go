package handlers

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"sponsortrack/internal/dealview"
	"sponsortrack/internal/models"
	"sponsortrack/internal/services"
)

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// optionalQueryInt: пустой параметр даёт 0, мусор даёт ошибку.
func optionalQueryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}

// parseFilter читает status/year/search; неизвестный статус не ошибка, он просто ничего не найдёт.
func parseFilter(c *gin.Context) (dealview.Filter, error) {
	var f dealview.Filter
	if s := c.Query("status"); s != "" {
		status := models.DealStatus(s)
		f.Status = &status
	}
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return f, errors.New("invalid year")
		}
		f.Year = &year
	}
	f.Search = c.Query("search")
	return f, nil
}

func parseScope(c *gin.Context) (services.DealScope, error) {
	orgID, err := optionalQueryInt(c, "organization_id")
	if err != nil {
		return services.DealScope{}, err
	}
	accountID, err := optionalQueryInt(c, "account_id")
	if err != nil {
		return services.DealScope{}, err
	}
	return services.DealScope{OrganizationID: orgID, AccountID: accountID}, nil
}

// bindPatch допускает пустое тело: это пустой патч.
func bindPatch(c *gin.Context, req any) error {
	err := c.ShouldBindJSON(req)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
