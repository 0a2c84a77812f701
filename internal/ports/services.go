// Package ports defines the interfaces the application layer depends on.
// Adapters implement them: the embedded catalog, the remote API client and the
// preference stores.
//
// Port conventions:
//   - Context as first parameter on anything an adapter may implement with I/O
//   - Return domain types, never adapter DTOs
//   - Errors are domain errors (ErrNotFound, ErrUnavailable, ...)
package ports

import (
	"context"

	"github.com/jsamuelsen/ecotips/internal/domain"
)

// TipRepository is read-only access to the tip catalog.
// The collection never changes after load, so implementations must be safe for
// unlimited concurrent callers.
type TipRepository interface {
	// GetAll returns every tip in catalog order.
	GetAll(ctx context.Context) []domain.Tip

	// GetByID returns the tip with the given id.
	// Returns a *domain.NotFoundError if no tip has that id.
	GetByID(ctx context.Context, id int) (domain.Tip, error)

	// GetByCategory returns the tips whose normalized category equals category,
	// in catalog order. An unknown category yields an empty slice, not an error.
	GetByCategory(ctx context.Context, category string) []domain.Tip
}

// TipCatalog is a remote view of the catalog, as seen by the interactive client.
// Unlike TipRepository every call may fail.
type TipCatalog interface {
	// ListTips fetches the full collection.
	// Returns domain.ErrUnavailable if the catalog service cannot be reached.
	ListTips(ctx context.Context) ([]domain.Tip, error)

	// GetTip fetches a single tip.
	// Returns domain.ErrNotFound for an unknown id.
	GetTip(ctx context.Context, id int) (domain.Tip, error)

	// ListByCategory fetches the tips of one normalized category.
	ListByCategory(ctx context.Context, category string) ([]domain.Tip, error)
}

// PreferenceStore holds one per-user boolean flag per tip, such as "favorite"
// or "implemented". Implementations must be safe for concurrent use.
type PreferenceStore interface {
	// Get reports whether the flag is set for tipID.
	Get(tipID int) bool

	// Set turns the flag for tipID on or off.
	Set(tipID int, on bool) error
}

// PreferenceLister is implemented by stores that can enumerate their set flags.
type PreferenceLister interface {
	// IDs returns the tip ids whose flag is set, in ascending order.
	IDs() []int
}
