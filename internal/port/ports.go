// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the domain/service
// layer from concrete implementations.
package port

import (
	"context"

	"github.com/boddenberg/desking-go/internal/domain"
)

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}

// TemplateStore resolves form template IDs to their field layouts.
type TemplateStore interface {
	Get(id string) (domain.FormTemplate, error)
}

// FormFiller renders field values onto form templates.
type FormFiller interface {
	Fill(ctx context.Context, templateID string, fields domain.FieldMap) ([]byte, error)
	FillPackage(ctx context.Context, templateIDs []string, fields []domain.FieldMap) ([]byte, error)
}

// QuoteSheetRenderer draws the customer-facing quote sheet.
type QuoteSheetRenderer interface {
	Render(fields domain.FieldMap, res *domain.DeskResult) ([]byte, error)
}
