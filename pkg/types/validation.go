package types

type ComparisonType string

const (
	// ComparisonGemini is the legacy single-image format. It links its two
	// uploads explicitly via MainUploadID / SecondaryUploadID.
	ComparisonGemini ComparisonType = "gemini_validation"
	// ComparisonGeminiMulti is the current multi-image format. It carries no
	// upload linkage; member uploads are recovered by timestamp.
	ComparisonGeminiMulti ComparisonType = "gemini_validation_multi"
	// ComparisonText compares raw text with no uploads involved.
	ComparisonText ComparisonType = "text_comparison"
)

// ValidationRecord is one comparison result between a main-group and a
// secondary-group of uploads.
type ValidationRecord struct {
	ComparisonID   string         `json:"comparison_id"`
	ComparisonDate Timestamp      `json:"comparison_date"`
	ComparisonType ComparisonType `json:"comparison_type"`

	// Legacy linkage, only populated for ComparisonGemini records.
	MainUploadID      string `json:"main_upload_id,omitempty"`
	SecondaryUploadID string `json:"secondary_upload_id,omitempty"`

	AccuracyScore float64 `json:"accuracy_score"`
	IsSuccessful  *bool   `json:"is_successful,omitempty"`
	TotalFields   int     `json:"total_fields"`
	MatchedFields int     `json:"matched_fields"`

	ValidationResult *ValidationResult `json:"validation_result,omitempty"`
}

// ValidationResult is the nested field-level breakdown. Gemini validations
// populate MatchedData, text comparisons populate TextMatches and the line
// counters. Counts are taken as reported upstream and not re-checked here.
type ValidationResult struct {
	MatchedData     []FieldMatch `json:"matched_data,omitempty"`
	TextMatches     []FieldMatch `json:"text_matches,omitempty"`
	MissingData     []FieldMatch `json:"missing_data,omitempty"`
	IncorrectData   []FieldMatch `json:"incorrect_data,omitempty"`
	Recommendations []string     `json:"recommendations,omitempty"`

	TotalLines   int `json:"total_lines,omitempty"`
	MatchedLines int `json:"matched_lines,omitempty"`
}

type FieldMatch struct {
	Field    string `json:"field,omitempty"`
	Expected string `json:"expected,omitempty"`
	Actual   string `json:"actual,omitempty"`
	Match    bool   `json:"match"`
}

// ValidationFeed is the envelope of GET /history/validations.
type ValidationFeed struct {
	Validations []ValidationRecord `json:"validations"`
}
