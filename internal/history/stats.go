package history

import (
	"math"

	"screencheck/pkg/types"
)

// UploadStats summarizes the upload feed the way the record store's stats
// endpoint reports it, computed here because this service only ever sees the
// feed.
type UploadStats struct {
	TotalUploads          int     `json:"total_uploads"`
	MainUploads           int     `json:"main_uploads"`
	SecondaryUploads      int     `json:"secondary_uploads"`
	SuccessfulExtractions int     `json:"successful_text_extractions"`
	FailedExtractions     int     `json:"failed_text_extractions"`
	PendingExtractions    int     `json:"pending_text_extractions"`
	ExtractionRate        float64 `json:"text_extraction_rate"`
	TotalFileSizeBytes    int64   `json:"total_file_size_bytes"`
	TotalFileSizeMB       float64 `json:"total_file_size_mb"`
}

func SummarizeUploads(uploads []types.UploadRecord) UploadStats {
	var stats UploadStats
	stats.TotalUploads = len(uploads)

	for _, u := range uploads {
		switch u.ImageType {
		case types.ImageTypeMain:
			stats.MainUploads++
		case types.ImageTypeSecondary:
			stats.SecondaryUploads++
		}

		switch {
		case u.ExtractionSucceeded == nil:
			stats.PendingExtractions++
		case *u.ExtractionSucceeded:
			stats.SuccessfulExtractions++
		default:
			stats.FailedExtractions++
		}

		stats.TotalFileSizeBytes += u.FileSize
	}

	if stats.TotalUploads > 0 {
		rate := float64(stats.SuccessfulExtractions) / float64(stats.TotalUploads) * 100
		stats.ExtractionRate = round2(rate)
	}
	stats.TotalFileSizeMB = round2(float64(stats.TotalFileSizeBytes) / (1024 * 1024))

	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
