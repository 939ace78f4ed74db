package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type Part struct {
	Text string `json:"text"`
}

type Content struct {
	Parts []Part `json:"parts"`
}

type GenerateContentRequest struct {
	Contents []Content `json:"contents"`
}

type GenerateContentResponse struct {
	Candidates []struct {
		Content Content `json:"content"`
	} `json:"candidates"`
}

func NewClient() (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is not set")
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
	}, nil
}

// GenerateExerciseTips asks the model, in the role of a sports coach, how to
// perform the given exercise properly and returns the advice as a numbered
// list of plain-text lines.
func (c *Client) GenerateExerciseTips(ctx context.Context, exercise string) (string, error) {
	prompt := fmt.Sprintf("You are playing the role of a sports coach. "+
		"If the question is not in the context of sports, say that you can't help. "+
		"You should leave a message at the end that the user should still consult a professional coach. "+
		"The question: Give me the proper way to do %s exercises, answer briefly, concisely, and clearly.", exercise)

	req := GenerateContentRequest{
		Contents: []Content{
			{Parts: []Part{{Text: prompt}}},
		},
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	url := fmt.Sprintf("%s/models/gemini-1.5-flash:generateContent?key=%s", c.baseURL, c.apiKey)
	request, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		var errorResponse struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(response.Body).Decode(&errorResponse); err != nil {
			return "", fmt.Errorf("Gemini API returned non-200 status code: %d", response.StatusCode)
		}
		return "", fmt.Errorf("Gemini API error: %s", errorResponse.Error.Message)
	}

	var result GenerateContentResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %v", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no completion candidates returned")
	}

	return formatTips(result.Candidates[0].Content.Parts[0].Text), nil
}

var listMarkers = regexp.MustCompile(`^\d+\.\s|\*\*|[*-]`)

// formatTips strips the model's markdown list markers and renumbers the
// remaining lines.
func formatTips(generated string) string {
	var lines []string
	for _, line := range strings.Split(generated, "\n") {
		line = strings.TrimSpace(listMarkers.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%d. %s", len(lines)+1, line))
	}
	return strings.Join(lines, "\n")
}
