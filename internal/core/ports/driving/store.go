package driving

import "github.com/custodia-labs/resumedesk/internal/core/domain"

// DocumentStore holds the single current resume document.
type DocumentStore interface {
	// Get returns the current document.
	Get() domain.Resume

	// Replace makes next the current document and notifies subscribers in
	// registration order before returning. It performs no validation.
	Replace(next domain.Resume)

	// Subscribe registers fn to be called after every Replace.
	// The returned function removes the registration.
	Subscribe(fn func(domain.Resume)) (unsubscribe func())

	// Revision returns the number of replaces applied so far.
	Revision() uint64
}
