package service

import "strings"

// ParseAccountNumbers splits raw on newlines, trims every line and drops the
// empty ones. Order is preserved. Blank input yields an empty slice.
func ParseAccountNumbers(raw string) []string {
	lines := strings.Split(raw, "\n")

	accountNumbers := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		accountNumbers = append(accountNumbers, line)
	}

	return accountNumbers
}
