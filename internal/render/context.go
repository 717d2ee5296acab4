package render

import (
	"github.com/classroomhub/hub-server/internal/domain"
)

// Context is the ephemeral key→value set used to fill placeholders for one
// render operation. It is built per request and never persisted.
type Context map[string]string

// ContextInput gathers everything a render context is built from.
type ContextInput struct {
	Student        domain.Student
	Guardian       domain.Guardian
	SubjectOrClass string
	TeacherName    string
	Term           string
	Extras         map[string]string // caller-supplied, wins over derived keys
}

// BuildContext derives the canonical placeholder keys from a student record,
// a chosen guardian, and the request's selectors. Pronoun keys come from the
// stored pronouns string, falling back to the legacy gender field, falling
// back to they/them/their.
func BuildContext(in ContextInput) Context {
	pronounSource := in.Student.Pronouns
	if pronounSource == "" {
		pronounSource = PronounsForGender(in.Student.Gender)
	}
	p := ParsePronouns(pronounSource)

	ctx := Context{
		"first":         in.Student.FirstName,
		"First":         capitalize(in.Student.FirstName),
		"last":          in.Student.LastName,
		"student_first": in.Student.FirstName,
		"student_last":  in.Student.LastName,
		"grade":         in.Student.Grade,
		"pronouns":      pronounSource,

		"they":   p.Subject,
		"them":   p.Object,
		"their":  p.PossessiveAdj,
		"theirs": p.Possessive,
		"They":   capitalize(p.Subject),
		"Them":   capitalize(p.Object),
		"Their":  capitalize(p.PossessiveAdj),
		"Theirs": capitalize(p.Possessive),

		// Legacy spellings kept as live keys so normalized older banks fill.
		"he_she":  p.Subject,
		"him_her": p.Object,
		"his_her": p.PossessiveAdj,

		"guardian_name":         in.Guardian.Name,
		"guardian_email":        in.Guardian.Email,
		"guardian_phone":        in.Guardian.Phone,
		"guardian_relationship": in.Guardian.Relationship,

		"subject_or_class": in.SubjectOrClass,
		"teacher_name":     in.TeacherName,
		"term":             in.Term,
	}

	for k, v := range in.Extras {
		ctx[k] = v
	}

	return ctx
}
