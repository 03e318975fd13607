package services

import (
	"strings"

	"github.com/yildiz/campuscms/internal/pkg/apperrors"
	"github.com/yildiz/campuscms/internal/pkg/slug"
)

// normalizeSlug returns the slug to persist for an entity. An explicitly
// requested slug must already be well-formed; when none is given the slug is
// derived from the fallback (usually the entity name).
func normalizeSlug(requested, fallback string) (string, error) {
	requested = strings.TrimSpace(requested)
	if requested != "" {
		if !slug.IsValid(requested) {
			return "", apperrors.NewValidationError("Slug must contain only lowercase letters, digits and hyphens")
		}
		return requested, nil
	}

	derived := slug.From(fallback)
	if derived == "" {
		return "", apperrors.NewValidationError("A slug could not be derived from the name")
	}
	return derived, nil
}
