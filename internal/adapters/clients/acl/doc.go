// Package acl is the anti-corruption layer between the tips API's wire format
// and the domain model used by the interactive client.
//
// The API's JSON shapes (camelCase tip objects and the error envelope) never
// leave this package. Callers get domain.Tip values and domain errors:
//
//   - 404 → [domain.ErrNotFound]
//   - 409 → [domain.ErrConflict]
//   - 400/422 → [domain.ErrValidation], with the first field detail when present
//   - 429, 5xx, transport failures and an open circuit → [domain.ErrUnavailable]
//
// [TipClient] implements ports.TipCatalog and ports.HealthChecker on top of
// clients.Client.
package acl
