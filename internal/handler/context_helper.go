package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/noah-isme/student-management-api/internal/models"
	appErrors "github.com/noah-isme/student-management-api/pkg/errors"
	"github.com/noah-isme/student-management-api/pkg/response"
)

// pathID reads the :id parameter and requires it to be a UUID.
func pathID(c *gin.Context, resource string) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrBadRequest, fmt.Sprintf("invalid %s id: %s", resource, id)))
		return "", false
	}
	return id, true
}

// bindJSON decodes the body, answering 400 on malformed JSON.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return false
	}
	return true
}

// optionalBool parses an optional boolean query parameter.
func optionalBool(c *gin.Context, name string) (*bool, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrBadRequest, fmt.Sprintf("%s must be true or false", name))
	}
	return &v, nil
}

// PageParser reads page, size and repeated sort query parameters.
type PageParser struct {
	DefaultSize int
	MaxSize     int
}

// Parse builds a PageRequest. Page is zero-based; size is clamped to MaxSize.
func (p PageParser) Parse(c *gin.Context) (models.PageRequest, error) {
	req := models.PageRequest{Size: p.DefaultSize}
	if req.Size <= 0 {
		req.Size = models.DefaultPageSize
	}

	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return models.PageRequest{}, appErrors.Clone(appErrors.ErrBadRequest, "page must be a non-negative integer")
		}
		req.Page = page
	}
	if raw := strings.TrimSpace(c.Query("size")); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return models.PageRequest{}, appErrors.Clone(appErrors.ErrBadRequest, "size must be a positive integer")
		}
		req.Size = size
	}
	if p.MaxSize > 0 && req.Size > p.MaxSize {
		req.Size = p.MaxSize
	}

	for _, token := range c.QueryArray("sort") {
		if strings.TrimSpace(token) == "" {
			continue
		}
		order, err := models.ParseSortOrder(token)
		if err != nil {
			return models.PageRequest{}, appErrors.Clone(appErrors.ErrBadRequest, err.Error())
		}
		req.Sort = append(req.Sort, order)
	}
	return req, nil
}
