package domain

import "time"

// SaveReceipt describes a completed save request.
type SaveReceipt struct {
	// Revision is the store revision that was handed to the save hook.
	Revision uint64

	// SavedAt is when the hook accepted the document.
	SavedAt time.Time
}
