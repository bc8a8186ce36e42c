package domain

import "strings"

// Profile is the identity the host platform hands us at session start.
// Immutable after creation; the guest profile is substituted when the
// update carries no user payload.
type Profile struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	PhotoURL  string `json:"photo_url"`
}

// Guest returns the fixed fallback identity.
func Guest() *Profile {
	return &Profile{ID: "guest", FirstName: "Guest"}
}

func (p *Profile) FullName() string {
	parts := make([]string, 0, 2)
	if p.FirstName != "" {
		parts = append(parts, p.FirstName)
	}
	if p.LastName != "" {
		parts = append(parts, p.LastName)
	}
	if len(parts) == 0 {
		return "Guest"
	}
	return strings.Join(parts, " ")
}

// Handle returns the @username or a placeholder when the user has none.
func (p *Profile) Handle() string {
	if p.Username == "" {
		return "no username"
	}
	return "@" + p.Username
}
