package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/extconfig/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_ConfigurationMap(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]string
		want   string
	}{
		{name: "merged keys", values: map[string]string{"db.host": "localhost", "db.port": "5432"}, want: `{"db.host":"localhost","db.port":"5432"}`},
		{name: "empty value kept", values: map[string]string{"feature.on": ""}, want: `{"feature.on":""}`},
		{name: "empty map", values: map[string]string{}, want: `{}`},
		{name: "unicode value", values: map[string]string{"greeting": "héllo"}, want: `{"greeting":"héllo"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			n, err := WriteJSON(rec, tt.values, http.StatusOK)

			require.NoError(t, err)
			assert.Equal(t, rec.Body.Len(), n)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestWriteJSON_Report(t *testing.T) {
	report := models.Report{RunID: "run-1", DeploymentID: "prod"}
	report.Add(models.ItemResult{
		Pass:     models.AbsoluteFile,
		Location: "/etc/app/missing.properties",
		Resolved: "/etc/app/missing.properties",
		Outcome:  models.NotFound,
		Error:    "source not found",
	})

	rec := httptest.NewRecorder()
	_, err := WriteJSON(rec, report, http.StatusOK)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "run-1", got["run_id"])
	assert.Equal(t, "prod", got["deployment_id"])

	items, ok := got["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)

	item := items[0].(map[string]any)
	assert.Equal(t, "absolute-file", item["pass"])
	assert.Equal(t, "not_found", item["outcome"])
	assert.EqualValues(t, 0, item["merged"])
}

func TestWriteJSON_StatusCodePassedThrough(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, map[string]string{}, http.StatusAccepted)

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestWriteJSON_EncodingFailure(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]any{"bad": make(chan int)}, http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEqual(t, "application/json", rec.Header().Get("Content-Type"))
}
