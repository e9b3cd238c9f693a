package types

type ImageType string

const (
	ImageTypeMain      ImageType = "main"
	ImageTypeSecondary ImageType = "secondary"
)

// UploadRecord is one processed screenshot as the record store reports it.
// Records are immutable after creation; the only mutation is deletion.
type UploadRecord struct {
	UploadID         string    `json:"upload_id"`
	Filename         string    `json:"filename,omitempty"`
	OriginalFilename string    `json:"original_filename"`
	ImageType        ImageType `json:"image_type"`
	ContentType      string    `json:"content_type,omitempty"`
	FileSize         int64     `json:"file_size"`
	OriginalSize     int64     `json:"original_size,omitempty"`
	UploadDate       Timestamp `json:"upload_date"`
	Status           string    `json:"status,omitempty"`

	// Text extraction outcome. Success is nil while extraction is pending.
	ExtractedText       string     `json:"extracted_text,omitempty"`
	ExtractionSucceeded *bool      `json:"text_extraction_success,omitempty"`
	ExtractionError     string     `json:"text_extraction_error,omitempty"`
	ProcessedAt         *Timestamp `json:"processed_at,omitempty"`
}

// UploadFeed is the envelope of GET /history/uploads.
type UploadFeed struct {
	Uploads []UploadRecord `json:"uploads"`
}

// UploadDetail is the envelope of GET /history/uploads/{upload_id}.
type UploadDetail struct {
	Upload UploadRecord `json:"upload"`
}
