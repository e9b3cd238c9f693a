package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"screencheck/pkg/types"

	"github.com/stretchr/testify/require"
)

func loadScenario(t *testing.T, store *fakeStore) *Service {
	t.Helper()
	svc := newTestService(store)
	_, err := svc.Load(context.Background())
	require.NoError(t, err)
	return svc
}

func TestDeleteComparisonSessionCascades(t *testing.T) {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeStore{
		uploads: []types.UploadRecord{
			upload("u1", types.ImageTypeMain, base),
			upload("u2", types.ImageTypeMain, base.Add(time.Minute)),
			upload("u3", types.ImageTypeSecondary, base.Add(2*time.Minute)),
		},
		validations: []types.ValidationRecord{
			multiValidation("v1", base.Add(time.Minute), 85),
		},
	}
	svc := loadScenario(t, store)

	err := svc.DeleteSession(context.Background(), "v1")
	require.NoError(t, err)

	// 1 validation + 2 main + 1 secondary deletes.
	require.Equal(t, []string{"v1"}, store.deletedValidations)
	require.ElementsMatch(t, []string{"u1", "u2", "u3"}, store.deletedUploads)

	// Removed from the presented list without a re-fetch.
	require.Empty(t, svc.Sessions())
}

func TestDeleteStandaloneSession(t *testing.T) {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeStore{
		uploads: []types.UploadRecord{upload("u1", types.ImageTypeMain, base)},
	}
	svc := loadScenario(t, store)

	err := svc.DeleteSession(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, []string{"u1"}, store.deletedUploads)
	require.Empty(t, store.deletedValidations)
	require.Empty(t, svc.Sessions())
}

func TestDeleteSessionPartialFailure(t *testing.T) {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeStore{
		uploads: []types.UploadRecord{
			upload("u1", types.ImageTypeMain, base),
			upload("u2", types.ImageTypeSecondary, base.Add(time.Minute)),
		},
		validations: []types.ValidationRecord{
			multiValidation("v1", base.Add(time.Minute), 85),
		},
		failUploadDeletes: map[string]error{"u2": errors.New("500 internal")},
	}
	svc := loadScenario(t, store)

	err := svc.DeleteSession(context.Background(), "v1")
	require.Error(t, err)

	var cascadeErr *CascadeDeleteError
	require.ErrorAs(t, err, &cascadeErr)
	require.Equal(t, 1, cascadeErr.Failed)
	require.Equal(t, 3, cascadeErr.Total)
	require.Equal(t, "v1", cascadeErr.SessionID)

	// The deletes that went through are not rolled back.
	require.Equal(t, []string{"v1"}, store.deletedValidations)
	require.Contains(t, store.deletedUploads, "u1")

	// The presented list is unchanged on failure.
	require.Len(t, svc.Sessions(), 1)
}

func TestDeleteSessionNotFound(t *testing.T) {
	store := &fakeStore{}
	svc := loadScenario(t, store)

	err := svc.DeleteSession(context.Background(), "nope")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDeleteTargetsLegacyFallback(t *testing.T) {
	// A session built from the legacy shape carries no multi-upload arrays;
	// the cascade falls back to the single ids on the validation record.
	session := types.Session{
		ID:   "v1",
		Kind: types.SessionComparison,
		Validation: &types.ValidationRecord{
			ComparisonID:      "v1",
			ComparisonType:    types.ComparisonGemini,
			MainUploadID:      "m1",
			SecondaryUploadID: "s1",
		},
	}

	targets := deleteTargets(session)
	require.Len(t, targets, 3)
	require.Equal(t, deleteTarget{kind: "validation", id: "v1"}, targets[0])
	require.ElementsMatch(t,
		[]deleteTarget{{kind: "upload", id: "m1"}, {kind: "upload", id: "s1"}},
		targets[1:],
	)
}
