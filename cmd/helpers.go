package cmd

import "strings"

// splitComma splits a comma-separated option value, trimming whitespace and
// dropping empty entries.
func splitComma(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
