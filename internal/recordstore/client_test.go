package recordstore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"screencheck/pkg/types"

	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL, 5*time.Second), srv
}

func TestListUploads(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"uploads": [
				{
					"upload_id": "u1",
					"original_filename": "invoice.png",
					"image_type": "main",
					"file_size": 2048,
					"upload_date": "2024-01-01T10:00:00Z",
					"extracted_text": "hello",
					"text_extraction_success": true
				},
				{
					"upload_id": "u2",
					"original_filename": "scan.png",
					"image_type": "secondary",
					"file_size": 4096,
					"upload_date": "2024-01-01T10:02:00.123456"
				}
			]
		}`))
	}))
	defer srv.Close()

	uploads, err := client.ListUploads(context.Background(), ListOptions{
		Limit:     50,
		ImageType: types.ImageTypeMain,
		Sort:      "newest",
	})
	require.NoError(t, err)

	require.Equal(t, "/history/uploads", gotPath)
	require.Equal(t, []string{"50"}, gotQuery["limit"])
	require.Equal(t, []string{"main"}, gotQuery["image_type"])
	require.Equal(t, []string{"newest"}, gotQuery["sort"])

	require.Len(t, uploads, 2)
	require.Equal(t, "u1", uploads[0].UploadID)
	require.NotNil(t, uploads[0].ExtractionSucceeded)
	require.True(t, *uploads[0].ExtractionSucceeded)

	// Zone-less legacy timestamps parse as UTC.
	want := time.Date(2024, 1, 1, 10, 2, 0, 123456000, time.UTC)
	require.Equal(t, want, uploads[1].UploadDate.Time)
	require.Nil(t, uploads[1].ExtractionSucceeded)
}

func TestListValidations(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/history/validations", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"validations": [
				{
					"comparison_id": "v1",
					"comparison_date": "2024-01-01T10:01:00Z",
					"comparison_type": "gemini_validation_multi",
					"accuracy_score": 85,
					"total_fields": 12,
					"matched_fields": 10,
					"validation_result": {
						"matched_data": [{"field": "total", "expected": "10.00", "actual": "10.00", "match": true}],
						"recommendations": ["check line 4"]
					}
				},
				{
					"comparison_id": "v2",
					"comparison_date": "2023-11-05T09:00:00Z",
					"comparison_type": "gemini_validation",
					"main_upload_id": "m1",
					"secondary_upload_id": "s1",
					"accuracy_score": 40
				}
			]
		}`))
	}))
	defer srv.Close()

	validations, err := client.ListValidations(context.Background(), ListOptions{})
	require.NoError(t, err)
	require.Len(t, validations, 2)

	require.Equal(t, types.ComparisonGeminiMulti, validations[0].ComparisonType)
	require.Empty(t, validations[0].MainUploadID)
	require.NotNil(t, validations[0].ValidationResult)
	require.Len(t, validations[0].ValidationResult.MatchedData, 1)

	require.Equal(t, types.ComparisonGemini, validations[1].ComparisonType)
	require.Equal(t, "m1", validations[1].MainUploadID)
	require.Equal(t, "s1", validations[1].SecondaryUploadID)
}

func TestUploadByID(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/history/uploads/u1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"upload": {"upload_id": "u1", "original_filename": "a.png", "image_type": "main", "file_size": 1, "upload_date": "2024-01-01T10:00:00Z"}}`))
	}))
	defer srv.Close()

	detail, err := client.UploadByID(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, "u1", detail.UploadID)
}

func TestDeleteEndpoints(t *testing.T) {
	var paths []string
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, client.DeleteUpload(context.Background(), "u1"))
	require.NoError(t, client.DeleteValidation(context.Background(), "v1"))
	require.Equal(t, []string{"/history/uploads/u1", "/validation/result/v1"}, paths)
}

func TestNon2xxIsAnError(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := client.ListUploads(context.Background(), ListOptions{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")

	err = client.DeleteUpload(context.Background(), "u1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
}
