package interfaces

// This file contains compile-time interface implementation checks.
// They fail the build if a book variant stops satisfying Publication.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/bookshelf/internal/entities"
)

// =============================================================================
// Book Variants
// =============================================================================

var _ entities.Publication = (*entities.Book)(nil)
var _ entities.Publication = (*entities.PaperBook)(nil)
var _ entities.Publication = (*entities.AudioBook)(nil)

// =============================================================================
// Error Types
// =============================================================================

var _ error = (*entities.FieldError)(nil)
var _ interface{ Unwrap() error } = (*entities.FieldError)(nil)
