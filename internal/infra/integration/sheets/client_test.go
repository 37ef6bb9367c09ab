package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSpreadsheetWritesHeaderRow(t *testing.T) {
	var createdTitle string
	var headerValues [][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/spreadsheets":
			var body struct {
				Properties struct {
					Title string `json:"title"`
				} `json:"properties"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			createdTitle = body.Properties.Title
			json.NewEncoder(w).Encode(map[string]string{"spreadsheetId": "sheet-abc"})

		case r.Method == http.MethodPut:
			require.Equal(t, "RAW", r.URL.Query().Get("valueInputOption"))
			var body struct {
				Values [][]string `json:"values"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			headerValues = body.Values
			w.WriteHeader(http.StatusOK)

		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient("test-token", server.URL)

	id, err := client.CreateSpreadsheet(context.Background(), CreateSpreadsheetInput{
		Title:  "Acme Plumbing - Local Lead Bot Leads",
		Header: LeadHeaderRow,
	})

	assert.NoError(t, err)
	assert.Equal(t, "sheet-abc", id)
	assert.Equal(t, "Acme Plumbing - Local Lead Bot Leads", createdTitle)
	require.Len(t, headerValues, 1)
	assert.Equal(t, []string{"Name", "Phone", "Service", "Time", "Captured At"}, headerValues[0])
}

func TestAppendRowPostsValues(t *testing.T) {
	var appended [][]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "USER_ENTERED", r.URL.Query().Get("valueInputOption"))
		require.Contains(t, r.URL.Path, "sheet-abc")

		var body struct {
			Values [][]string `json:"values"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		appended = body.Values
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient("test-token", server.URL)

	row := []string{"Jane Doe", "9175551234", "drain cleaning", "Sunday, June 1, 2025, 2:00 PM", "2025-06-01T18:30:00Z"}
	err := client.AppendRow(context.Background(), "sheet-abc", row)

	assert.NoError(t, err)
	require.Len(t, appended, 1)
	assert.Equal(t, row, appended[0])
}

func TestClientSurfacesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"status":"PERMISSION_DENIED"}}`, http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient("bad-token", server.URL)

	err := client.AppendRow(context.Background(), "sheet-abc", []string{"x"})
	assert.ErrorContains(t, err, "status 403")
}
