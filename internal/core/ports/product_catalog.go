package ports

import (
	"context"

	"stockrequest/internal/core/domain/model/kernel"
	"stockrequest/internal/core/domain/model/product"
)

// ProductCatalog is the read-only view of the product catalog used by bulk
// creation from a selection.
type ProductCatalog interface {
	// GetVariant retrieves a product variant by its identifier.
	GetVariant(ctx context.Context, variantID kernel.UUID) (*product.Variant, error)

	// GetActiveVariantsOfTemplates retrieves the non-archived variants of
	// the given product templates. Archived variants are excluded at the
	// lookup, not filtered by the caller.
	GetActiveVariantsOfTemplates(ctx context.Context, templateIDs []kernel.UUID) ([]*product.Variant, error)
}
