package render

import "strings"

// Compose joins resolved snippets into one document: each part has its
// leading marker stripped and is trimmed, empties are dropped, and the rest
// are joined with single spaces. Order is caller-controlled; the composer
// itself is stateless.
func Compose(parts []string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(StripMarker(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, " ")
}
