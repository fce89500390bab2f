package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/laptechvn/backend/internal/domain/shared"
	"github.com/laptechvn/backend/internal/interfaces/http/dto"
)

// bindListFilter binds the common pagination query parameters into a
// repository filter with an empty Filters map ready for handler-specific keys.
func bindListFilter(c *gin.Context) (shared.Filter, error) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return shared.Filter{}, err
	}
	req.Normalize()
	return shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
		Filters:  make(map[string]interface{}),
	}, nil
}

// parseIDParam parses a UUID path parameter.
func parseIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// addStringFilter copies a non-empty query parameter into the filter map.
func addStringFilter(c *gin.Context, filter *shared.Filter, param, key string) {
	if v := c.Query(param); v != "" {
		filter.Filters[key] = v
	}
}

// addUUIDFilter parses an optional UUID query parameter into the filter map.
func addUUIDFilter(c *gin.Context, filter *shared.Filter, param, key string) error {
	v := c.Query(param)
	if v == "" {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return err
	}
	filter.Filters[key] = id
	return nil
}

// addBoolFilter parses an optional boolean query parameter into the filter map.
func addBoolFilter(c *gin.Context, filter *shared.Filter, param, key string) error {
	v := c.Query(param)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	filter.Filters[key] = b
	return nil
}

// addDateFilter parses an optional YYYY-MM-DD query parameter into the filter map.
func addDateFilter(c *gin.Context, filter *shared.Filter, param, key string) error {
	v := c.Query(param)
	if v == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return err
	}
	filter.Filters[key] = t
	return nil
}
