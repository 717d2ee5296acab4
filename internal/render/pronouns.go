// Package render fills placeholder tokens in comment templates and composes
// selected snippets into one document.
package render

import "strings"

// Pronouns holds the four derived pronoun forms for one student.
type Pronouns struct {
	Subject       string // they
	Object        string // them
	PossessiveAdj string // their
	Possessive    string // theirs
}

// ParsePronouns derives pronoun forms from a "subj/obj/possessiveAdj" string.
// Missing or malformed input falls back to they/them/their. The possessive
// pronoun follows the adjective: his→his, her→hers, anything else→theirs.
func ParsePronouns(raw string) Pronouns {
	p := Pronouns{Subject: "they", Object: "them", PossessiveAdj: "their"}

	parts := strings.Split(strings.ToLower(strings.TrimSpace(raw)), "/")
	if len(parts) >= 3 && parts[0] != "" && parts[1] != "" && parts[2] != "" {
		p.Subject = strings.TrimSpace(parts[0])
		p.Object = strings.TrimSpace(parts[1])
		p.PossessiveAdj = strings.TrimSpace(parts[2])
	}

	switch p.PossessiveAdj {
	case "his":
		p.Possessive = "his"
	case "her":
		p.Possessive = "hers"
	default:
		p.Possessive = "theirs"
	}

	return p
}

// PronounsForGender maps a legacy gender field to a pronoun string.
// Used only when no explicit pronouns are stored.
func PronounsForGender(gender string) string {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "male", "m", "boy":
		return "he/him/his"
	case "female", "f", "girl":
		return "she/her/her"
	}
	return "they/them/their"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
