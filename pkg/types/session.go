package types

type SessionKind string

const (
	// SessionComparison groups a validation with the uploads it covered.
	SessionComparison SessionKind = "comparison"
	// SessionStandalone is a single upload no validation ever claimed.
	SessionStandalone SessionKind = "standalone"
)

// Session is the reconciled history entity. It is never persisted; the
// history service recomputes the full list from the two feeds on every load.
type Session struct {
	ID   string      `json:"id"`
	Kind SessionKind `json:"type"`
	Date Timestamp   `json:"date"`

	// Comparison sessions
	MainUploads      []UploadRecord    `json:"main_uploads,omitempty"`
	SecondaryUploads []UploadRecord    `json:"secondary_uploads,omitempty"`
	Validation       *ValidationRecord `json:"validation,omitempty"`

	// Standalone sessions
	Upload *UploadRecord `json:"upload,omitempty"`

	// Accuracy is nil for standalone sessions.
	Accuracy *float64 `json:"accuracy"`
}
