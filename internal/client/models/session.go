package models

// Session is the client-side credential cache: the opaque backend token plus
// the display fields shown in the UI. It is persisted locally and cleared on
// logout or when the backend rejects the credential.
type Session struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role,omitempty"`
	Company   string `json:"company,omitempty"`
}

// DisplayName returns a human-readable identity for prompts.
func (s *Session) DisplayName() string {
	switch {
	case s == nil:
		return ""
	case s.FirstName != "":
		return s.FirstName
	default:
		return s.Email
	}
}
