package detection

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/yingzhe/fishdetect/pkg/types"
)

// ParseDetections decodes a model's text reply into detection records.
// The reply is sanitized first since local vision models tend to wrap the
// array in code fences or add comments despite the prompt.
func ParseDetections(raw string) ([]types.Detection, error) {
	raw = sanitizeModelJSON(raw)

	if !strings.HasPrefix(raw, "[") {
		return nil, fmt.Errorf("no JSON array found in model response")
	}

	var dets []types.Detection
	if err := json.Unmarshal([]byte(raw), &dets); err != nil {
		return nil, fmt.Errorf("failed to decode model response: %v", err)
	}
	return dets, nil
}

// sanitizeModelJSON removes code fences, comments, and trailing commas from
// a JSON response and keeps only the outermost array.
func sanitizeModelJSON(raw string) string {
	raw = strings.TrimSpace(raw)

	// Strip triple-backtick fences if present
	if strings.HasPrefix(raw, "```") {
		if i := strings.Index(raw, "\n"); i >= 0 {
			raw = raw[i+1:]
		}
		if j := strings.LastIndex(raw, "```"); j >= 0 {
			raw = raw[:j]
		}
	}
	raw = strings.TrimSpace(raw)
	raw = strings.Trim(raw, "`")

	// Remove /* ... */ block comments
	reBlock := regexp.MustCompile(`(?s)/\*.*?\*/`)
	raw = reBlock.ReplaceAllString(raw, "")

	// Remove // line/inline comments
	reLine := regexp.MustCompile(`(?m)^\s*//.*$`)
	raw = reLine.ReplaceAllString(raw, "")

	// Remove trailing commas before } or ]
	reTrailing := regexp.MustCompile(`,(\s*[}\]])`)
	raw = reTrailing.ReplaceAllString(raw, "$1")

	// Keep only the outermost [...]
	if start := strings.Index(raw, "["); start >= 0 {
		if end := strings.LastIndex(raw, "]"); end > start {
			raw = raw[start : end+1]
		}
	}
	return strings.TrimSpace(raw)
}
