package logger

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields are attached to every log record emitted with a context carrying them.
type LogFields struct {
	RequestID      *string
	UserID         *uuid.UUID
	OrganizationID *uuid.UUID
	TransactionID  *uuid.UUID
	ActivityID     *uuid.UUID
	ChatID         *uuid.UUID
	Component      string // e.g. "donorhub.service.ledger"
}

// WithLogFields enriches ctx with structured log fields.
// Multiple calls merge fields, newer non-nil values win.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields returns the fields stored in ctx, or the zero value.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.RequestID != nil {
		result.RequestID = next.RequestID
	}
	if next.UserID != nil {
		result.UserID = next.UserID
	}
	if next.OrganizationID != nil {
		result.OrganizationID = next.OrganizationID
	}
	if next.TransactionID != nil {
		result.TransactionID = next.TransactionID
	}
	if next.ActivityID != nil {
		result.ActivityID = next.ActivityID
	}
	if next.ChatID != nil {
		result.ChatID = next.ChatID
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr returns a pointer to v.
// Handy inline: logger.WithLogFields(ctx, logger.LogFields{OrganizationID: logger.Ptr(orgID)})
func Ptr[T any](v T) *T {
	return &v
}
