package model

// SessionSnapshot is the persisted form of the active identity. It is a
// cache, not an authority: on load the account id is re-resolved against the
// accounts collection, and for authenticated sessions the embedded display
// fields are replaced by the live record whenever one exists.
type SessionSnapshot struct {
	AccountID string `json:"accountId"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Avatar    string `json:"avatar"`
	Bio       string `json:"bio,omitempty"`
	Guest     bool   `json:"guest"`
}

// GuestID is the synthetic account id used by guest sessions. Guests have no
// backing Account record.
const GuestID = "guest"

// GuestSnapshot returns the fixed identity used for guest sessions.
func GuestSnapshot() SessionSnapshot {
	return SessionSnapshot{
		AccountID: GuestID,
		Name:      "Guest",
		Avatar:    DefaultAvatar,
		Guest:     true,
	}
}
