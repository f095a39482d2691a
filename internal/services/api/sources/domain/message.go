package domain

import (
	"fmt"
	"strings"

	str "netmatch/internal/platform/strings"
)

// previewLimit is how many names a multi match message spells out
const previewLimit = 3

// unknownName stands in for a source without a name
const unknownName = "Unknown"

// Summary renders the human message for names found with query
func Summary(query string, names []string) string {
	switch len(names) {
	case 0:
		return fmt.Sprintf("No traffic sources found matching '%s'", query)
	case 1:
		return fmt.Sprintf("Found 1 traffic source matching '%s': %s", query, orUnknown(names[0]))
	}

	shown := names
	if len(shown) > previewLimit {
		shown = shown[:previewLimit]
	}
	parts := make([]string, 0, len(shown))
	for _, n := range shown {
		parts = append(parts, orUnknown(n))
	}
	preview := strings.Join(parts, ", ")
	if rest := len(names) - len(shown); rest > 0 {
		preview += fmt.Sprintf(" and %d more", rest)
	}
	return fmt.Sprintf("Found %d traffic sources matching '%s': %s", len(names), query, preview)
}

func orUnknown(name string) string { return str.OrDefault(name, unknownName) }
