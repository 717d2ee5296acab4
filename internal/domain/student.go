package domain

// Student is the subject of a rendered comment. Only the fields needed to
// build a render context are modeled here; the full roster record lives
// outside this service.
type Student struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Grade     string `json:"grade,omitempty"`
	Pronouns  string `json:"pronouns,omitempty"` // "subj/obj/possessiveAdj", e.g. "she/her/her"
	Gender    string `json:"gender,omitempty"`   // legacy field consulted when Pronouns is empty
}

// Guardian is the parent or guardian chosen for a rendered comment.
type Guardian struct {
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}
