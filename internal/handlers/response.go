package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sponsortrack/internal/repositories"
	"sponsortrack/internal/services"
)

// ItemsResponse: ответ со списком записей.
type ItemsResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Items   T      `json:"items"`
}

// ItemResponse: ответ с одной записью.
type ItemResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Item    T      `json:"item"`
}

func respondItems[T any](c *gin.Context, status int, message string, items T) {
	c.JSON(status, ItemsResponse[T]{Success: true, Message: message, Items: items})
}

func respondItem[T any](c *gin.Context, status int, message string, item T) {
	c.JSON(status, ItemResponse[T]{Success: true, Message: message, Item: item})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ItemResponse[any]{Success: false, Message: message, Item: nil})
}

// respondNotFound отдаёт 404 с пустой строкой в item.
func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ItemResponse[string]{Success: false, Message: message})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, repositories.ErrInvalidValue):
		return http.StatusBadRequest
	case errors.Is(err, repositories.ErrForeignKey):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondServiceError(c *gin.Context, err error) {
	respondError(c, errorStatus(err), err.Error())
}
