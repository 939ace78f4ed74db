package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(serverURL string) *Client {
	return &Client{
		apiKey:     "test-key",
		baseURL:    serverURL,
		httpClient: &http.Client{},
	}
}

func TestGenerateExerciseTips(t *testing.T) {
	generated := "**Proper running form:**\n\n1. Keep your back straight.\n- Land midfoot.\n\nConsult a professional coach."

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req GenerateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "running")

		json.NewEncoder(w).Encode(GenerateContentResponse{
			Candidates: []struct {
				Content Content `json:"content"`
			}{
				{Content: Content{Parts: []Part{{Text: generated}}}},
			},
		})
	}))
	defer server.Close()

	result, err := testClient(server.URL).GenerateExerciseTips(context.Background(), "running")
	require.NoError(t, err)
	assert.Equal(t, "1. Proper running form:\n2. Keep your back straight.\n3. Land midfoot.\n4. Consult a professional coach.", result)
}

func TestGenerateExerciseTipsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"message": "API key not valid"},
		})
	}))
	defer server.Close()

	_, err := testClient(server.URL).GenerateExerciseTips(context.Background(), "running")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGenerateExerciseTipsNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(GenerateContentResponse{})
	}))
	defer server.Close()

	_, err := testClient(server.URL).GenerateExerciseTips(context.Background(), "running")
	assert.Error(t, err)
}

func TestFormatTips(t *testing.T) {
	tests := []struct {
		name      string
		generated string
		expected  string
	}{
		{
			name:      "strips markers and renumbers",
			generated: "1. First\n2. Second",
			expected:  "1. First\n2. Second",
		},
		{
			name:      "drops blank lines",
			generated: "- One\n\n\n* Two",
			expected:  "1. One\n2. Two",
		},
		{
			name:      "removes bold markers",
			generated: "**Warm up** properly",
			expected:  "1. Warm up properly",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatTips(tt.generated))
		})
	}
}
