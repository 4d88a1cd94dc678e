package ports

import (
	"context"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/template"
)

// TemplateRepository defines the persistence contract for request templates.
type TemplateRepository interface {
	// Add persists a new template with its lines.
	Add(ctx context.Context, tpl *template.Template) error

	// Get retrieves a template by its unique identifier, lines included.
	Get(ctx context.Context, id kernel.UUID) (*template.Template, error)

	// GetAll retrieves every template, ordered by name.
	GetAll(ctx context.Context) ([]*template.Template, error)
}
