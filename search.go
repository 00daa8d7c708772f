package moneta

import (
	"fmt"
	"regexp"
	"strings"
)

// FilterByDescription returns the records whose description matches the
// pattern, interpreted as a case-insensitive regular expression.
func FilterByDescription(records []Transaction, pattern string) ([]Transaction, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid search pattern %q: %w", pattern, err)
	}
	var out []Transaction
	for _, tx := range records {
		if re.MatchString(tx.Description) {
			out = append(out, tx)
		}
	}
	return out, nil
}

// CountByCategory counts records whose description contains a category label
// as a literal substring. The first matching label in the caller's list wins,
// so no record is counted twice. Labels with no match are omitted.
func CountByCategory(records []Transaction, categories []string) map[string]int {
	counts := make(map[string]int)
	for _, tx := range records {
		for _, category := range categories {
			if strings.Contains(tx.Description, category) {
				counts[category]++
				break
			}
		}
	}
	return counts
}
