// Package model defines the entities persisted by the AstroGid core:
// accounts, content items, session snapshots and feedback messages.
package model

import "time"

// Account is a registered identity. Guests never appear in the accounts
// collection; the Guest flag exists only so a session snapshot can round-trip
// through the same shape.
type Account struct {
	// ID is assigned at registration and never changes.
	ID string `json:"id"`

	Name  string `json:"name"`
	Email string `json:"email"`

	// SecretHash and SecretSalt hold the argon2id digest of the account
	// secret. The plaintext secret is never persisted.
	SecretHash []byte `json:"secretHash,omitempty"`
	SecretSalt []byte `json:"secretSalt,omitempty"`

	// Avatar is an opaque reference: a data URI or an image path.
	Avatar string `json:"avatar"`

	Bio          string    `json:"bio"`
	Guest        bool      `json:"guest"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// DefaultAvatar is the avatar reference assigned to new accounts and guests
// until they pick their own image.
const DefaultAvatar = "images/guest.png"
