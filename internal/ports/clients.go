package ports

import "context"

// Enricher defines the client port for the text-enrichment service: it expands
// a short to-do description into a longer one. Implemented by the genai
// adapter; called by the application layer during item creation only.
//
// The returned text may be lightweight markup (the model tends to answer in
// markdown); callers are expected to flatten it before storage.
type Enricher interface {
	// Expand returns a longer descriptive text for the given description.
	// Implementations should respect context cancellation and deadlines.
	Expand(ctx context.Context, description string) (string, error)
}

// IdentityResolver turns a bearer credential into an owner identity.
// Implemented by the token package; called by the authentication middleware.
// Supplied to the HTTP layer at construction so tests can substitute a stub.
type IdentityResolver interface {
	// Resolve returns the owner ID encoded in the credential, or
	// domain.ErrUnauthorized when the credential is missing, malformed,
	// expired, or carries a bad signature.
	Resolve(credential string) (string, error)
}
