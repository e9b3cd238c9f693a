package history

import (
	"sort"
	"time"

	"screencheck/pkg/types"
)

// DefaultCorrelationWindow is the symmetric tolerance used to attach uploads
// to a multi-image validation when it carries no explicit upload ids.
const DefaultCorrelationWindow = 5 * time.Minute

// Diagnostics reports correlation anomalies. None of them are errors: a
// dropped validation is best-effort semantics, and a multi-claimed upload is
// a known limitation of window matching when uploads cluster in time.
type Diagnostics struct {
	// DroppedValidations lists comparison ids that could not be resolved to
	// at least one upload on each side and therefore emitted no session.
	DroppedValidations []string
	// MultiClaimedUploads lists upload ids claimed by more than one
	// validation. Such uploads appear in every claiming session.
	MultiClaimedUploads []string
}

// BuildSessions reconstructs the session timeline from the two feeds. It is
// a pure function: no I/O, deterministic for a given input.
//
// Each validation resolves its member uploads by one of two strategies keyed
// on the record's shape: legacy records look their two uploads up by the
// explicit ids they carry, multi-image records collect every upload of the
// matching image type whose timestamp falls within the window of the
// comparison date. A validation that ends up with an empty side emits
// nothing. Uploads claimed by no validation surface as standalone sessions.
// The result is sorted by date, newest first, with a stable sort so equal
// dates keep feed order.
func BuildSessions(uploads []types.UploadRecord, validations []types.ValidationRecord, window time.Duration) ([]types.Session, Diagnostics) {
	if window <= 0 {
		window = DefaultCorrelationWindow
	}

	byID := make(map[string]types.UploadRecord, len(uploads))
	for _, u := range uploads {
		byID[u.UploadID] = u
	}

	claims := make(map[string]int)
	var diag Diagnostics
	var sessions []types.Session

	for i := range validations {
		v := validations[i]

		var mains, secondaries []types.UploadRecord
		if v.ComparisonType == types.ComparisonGeminiMulti {
			mains = uploadsWithinWindow(uploads, types.ImageTypeMain, v.ComparisonDate.Time, window)
			secondaries = uploadsWithinWindow(uploads, types.ImageTypeSecondary, v.ComparisonDate.Time, window)
		} else {
			mains = lookupUpload(byID, v.MainUploadID)
			secondaries = lookupUpload(byID, v.SecondaryUploadID)
		}

		// Both sides must resolve or the record is unusable for display.
		// This covers legacy records whose referenced upload was deleted
		// and text comparisons, which involve no uploads at all.
		if len(mains) == 0 || len(secondaries) == 0 {
			diag.DroppedValidations = append(diag.DroppedValidations, v.ComparisonID)
			continue
		}

		for _, u := range mains {
			claims[u.UploadID]++
		}
		for _, u := range secondaries {
			claims[u.UploadID]++
		}

		accuracy := v.AccuracyScore
		sessions = append(sessions, types.Session{
			ID:               v.ComparisonID,
			Kind:             types.SessionComparison,
			Date:             v.ComparisonDate,
			MainUploads:      mains,
			SecondaryUploads: secondaries,
			Validation:       &v,
			Accuracy:         &accuracy,
		})
	}

	for _, u := range uploads {
		if claims[u.UploadID] > 0 {
			continue
		}
		upload := u
		sessions = append(sessions, types.Session{
			ID:     u.UploadID,
			Kind:   types.SessionStandalone,
			Date:   u.UploadDate,
			Upload: &upload,
		})
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Date.After(sessions[j].Date.Time)
	})

	// Report uploads claimed by more than one validation, in feed order so
	// the output stays deterministic.
	for _, u := range uploads {
		if claims[u.UploadID] > 1 {
			diag.MultiClaimedUploads = append(diag.MultiClaimedUploads, u.UploadID)
		}
	}

	return sessions, diag
}

func lookupUpload(byID map[string]types.UploadRecord, uploadID string) []types.UploadRecord {
	if uploadID == "" {
		return nil
	}
	u, ok := byID[uploadID]
	if !ok {
		return nil
	}
	return []types.UploadRecord{u}
}

// uploadsWithinWindow selects every upload of the given type whose upload
// date is at most window away from ref, on either side. There is no
// nearest-match tie-break; overlapping validations each take everything in
// their window.
func uploadsWithinWindow(uploads []types.UploadRecord, imageType types.ImageType, ref time.Time, window time.Duration) []types.UploadRecord {
	var matched []types.UploadRecord
	for _, u := range uploads {
		if u.ImageType != imageType {
			continue
		}
		delta := u.UploadDate.Sub(ref)
		if delta < 0 {
			delta = -delta
		}
		if delta <= window {
			matched = append(matched, u)
		}
	}
	return matched
}
