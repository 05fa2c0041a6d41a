package brief

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/johnquangdev/fireflies-bridge/internal/domain/entities"
)

// ParseReport decodes a completion into a validation report.
// A fenced ```json block is preferred over the surrounding text.
func ParseReport(content string) (entities.ValidationReport, error) {
	var report entities.ValidationReport
	if err := json.Unmarshal([]byte(extractJSON(content)), &report); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if report == nil {
		return nil, fmt.Errorf("response is not a JSON object")
	}
	return report, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if start := strings.Index(content, "```json"); start != -1 {
		content = content[start+len("```json"):]
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
