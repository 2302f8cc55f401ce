package model

import (
	"encoding/base64"
	"fmt"
	"time"
)

// Category classifies a content item. The set is fixed; publishing routes
// news and article items into their own collections in addition to the
// general posts collection.
type Category string

const (
	CategoryPost       Category = "post"
	CategoryAstrophoto Category = "astrophoto"
	CategoryNews       Category = "news"
	CategoryArticle    Category = "article"
	CategoryDiscussion Category = "discussion"
)

// Categories lists every valid category in presentation order.
var Categories = []Category{
	CategoryAstrophoto,
	CategoryNews,
	CategoryPost,
	CategoryArticle,
	CategoryDiscussion,
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// ParseCategory maps a user-supplied string onto a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// ImagePayload is a ready-to-store image handed to the core by the
// image-acquisition collaborator. Data is an already encoded JPEG.
type ImagePayload struct {
	Data   []byte `json:"data"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// DataURI renders the payload as a data URI suitable for use as an opaque
// image reference (e.g. an account avatar).
func (p ImagePayload) DataURI() string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(p.Data)
}

// ContentItem is a single user-authored publication. Owner name and avatar
// are denormalized copies captured at creation time; they are only updated
// by the explicit avatar propagation step on profile edits.
type ContentItem struct {
	// ID is unique across all three content collections and strictly
	// increases with creation order.
	ID int64 `json:"id"`

	OwnerID     string `json:"ownerId"`
	OwnerName   string `json:"ownerName"`
	OwnerAvatar string `json:"ownerAvatar"`

	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`

	// Image is an opaque reference to the item's picture: a data URI
	// produced from an ImagePayload, or a built-in image path for seeded
	// content.
	Image string `json:"image"`

	CreatedAt time.Time `json:"createdAt"`

	// Likes is write-only for now: tracked and persisted, never surfaced.
	Likes int `json:"likes"`
}
