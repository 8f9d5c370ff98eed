package handler

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"donorhub.app/api/internal/model"
	"donorhub.app/api/internal/service"
)

func invalid(field, message string) error {
	return &service.ValidationError{Field: field, Message: message}
}

// pathID parses a uuid path parameter. Malformed ids cannot exist, so they are a 404.
func pathID(c *gin.Context, name, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, &service.NotFoundError{Resource: resource})
		return uuid.Nil, false
	}
	return id, true
}

func pageQuery(c *gin.Context) (model.Page, error) {
	var page model.Page
	if v := c.Query("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return page, invalid("limit", "must be an integer")
		}
		page.Limit = int32(n)
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil || n < 0 {
			return page, invalid("offset", "must be a non-negative integer")
		}
		page.Offset = int32(n)
	}
	return page.Normalize(), nil
}

func searchQuery(c *gin.Context) *string {
	if v := strings.TrimSpace(c.Query("search")); v != "" {
		return &v
	}
	return nil
}

func boolQuery(c *gin.Context, name string) (*bool, error) {
	v := c.Query(name)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, invalid(name, "must be true or false")
	}
	return &b, nil
}

func parseUUIDs(field string, raw []string) ([]uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		// Form clients may send a single comma separated value.
		for _, part := range strings.Split(r, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := uuid.Parse(part)
			if err != nil {
				return nil, invalid(field, "contains an invalid id: "+part)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func parseOptionalUUID(field string, raw *string) (*uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		return nil, invalid(field, "must be a valid id")
	}
	return &id, nil
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, invalid(field, "must be a number")
	}
	return amount, nil
}

// parseDate accepts RFC 3339 timestamps and plain dates, which mean end of that day in UTC.
func parseDate(field, raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t.Add(24*time.Hour - time.Second), nil
	}
	return time.Time{}, invalid(field, "must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
}
