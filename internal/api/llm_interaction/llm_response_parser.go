package llmInteraction

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/FACorreiaa/mood-dining-suggestions/internal/types"
)

// generatedDescription is the per-place shape the enhancement prompt asks for.
type generatedDescription struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// extractJSONArray pulls the first JSON array out of free-form model output.
// It strips markdown code fences, then takes everything from the first "["
// through the last "]". The second return is false when no bracket pair
// exists; callers treat that the same as a transport failure.
func extractJSONArray(response string) (string, bool) {
	response = strings.TrimSpace(response)

	// Remove markdown code block markers
	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	if strings.HasSuffix(response, "```") {
		response = strings.TrimSuffix(response, "```")
	}
	response = strings.TrimSpace(response)

	firstBracket := strings.Index(response, "[")
	if firstBracket == -1 {
		return "", false
	}
	lastBracket := strings.LastIndex(response, "]")
	if lastBracket == -1 || lastBracket <= firstBracket {
		return "", false
	}
	return strings.TrimSpace(response[firstBracket : lastBracket+1]), true
}

func parseRecommendations(response string) ([]types.Recommendation, error) {
	jsonStr, ok := extractJSONArray(response)
	if !ok {
		return nil, fmt.Errorf("no JSON array found in model output")
	}
	var recommendations []types.Recommendation
	if err := json.Unmarshal([]byte(jsonStr), &recommendations); err != nil {
		return nil, fmt.Errorf("failed to parse recommendations JSON: %w", err)
	}
	return recommendations, nil
}

func parseDescriptions(response string) ([]generatedDescription, error) {
	jsonStr, ok := extractJSONArray(response)
	if !ok {
		return nil, fmt.Errorf("no JSON array found in model output")
	}
	var descriptions []generatedDescription
	if err := json.Unmarshal([]byte(jsonStr), &descriptions); err != nil {
		return nil, fmt.Errorf("failed to parse descriptions JSON: %w", err)
	}
	return descriptions, nil
}
