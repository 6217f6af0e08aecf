package model

import (
	"encoding/json"
	"fmt"
)

// EncodeAIRequirements serializes the requirement list to the JSON form the
// legacy project_submissions.aiRequirements column stores.
func EncodeAIRequirements(reqs []string) (string, error) {
	b, err := json.Marshal(reqs)
	if err != nil {
		return "", fmt.Errorf("encode ai requirements: %w", err)
	}
	return string(b), nil
}

// DecodeAIRequirements parses the stored JSON back into a requirement list.
func DecodeAIRequirements(raw string) ([]string, error) {
	var reqs []string
	if err := json.Unmarshal([]byte(raw), &reqs); err != nil {
		return nil, fmt.Errorf("decode ai requirements %q: %w", raw, err)
	}
	return reqs, nil
}
