package config

import "strings"

// GenerateConfigContent renders a config file where every value is present
// but commented out, so users can uncomment just what they want to change.
// The template comes from the embedded defaults text alone, explanatory
// comments included; whatever config the current user already has never
// leaks into it.
func GenerateConfigContent() string {
	return commentOutValues(DefaultConfigContent())
}

// commentOutValues comments out every value line, assignments and array
// elements alike, keeping blank lines, existing comments and [section]
// headers as they are.
func commentOutValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
