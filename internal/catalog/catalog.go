// Package catalog implements category-aware publishing and the derived
// content views. A published item always lands in the posts collection;
// news and article items additionally land in their specialized collection,
// so one item can legitimately live in two collections at once.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/astrogid/astrogid/internal/errs"
	"github.com/astrogid/astrogid/internal/model"
	"github.com/astrogid/astrogid/internal/repository"
)

// Catalog routes published items into collections and filters views out of
// them.
type Catalog struct {
	repo *repository.Repository
}

// New returns a Catalog over the given repository.
func New(repo *repository.Repository) *Catalog {
	return &Catalog{repo: repo}
}

// Publish creates a content item owned by ownerID, capturing the owner's
// current display name and avatar as point-in-time copies. The image
// argument is an opaque, ready-to-store reference produced by the
// image-acquisition collaborator.
func (c *Catalog) Publish(ctx context.Context, ownerID string, category model.Category, title, description, image string) (model.ContentItem, error) {
	if !category.Valid() {
		return model.ContentItem{}, fmt.Errorf("%w: unknown category %q", errs.ErrValidation, category)
	}
	owner, ok := c.repo.AccountByID(ownerID)
	if !ok {
		return model.ContentItem{}, fmt.Errorf("%w: account %s", errs.ErrNotFound, ownerID)
	}

	item := model.ContentItem{
		ID:          c.repo.NextContentID(),
		OwnerID:     owner.ID,
		OwnerName:   owner.Name,
		OwnerAvatar: owner.Avatar,
		Category:    category,
		Title:       title,
		Description: description,
		Image:       image,
		CreatedAt:   time.Now().UTC(),
	}

	if err := c.repo.InsertPost(ctx, item); err != nil {
		return model.ContentItem{}, err
	}
	switch category {
	case model.CategoryNews:
		if err := c.repo.InsertNews(ctx, item); err != nil {
			return model.ContentItem{}, err
		}
	case model.CategoryArticle:
		if err := c.repo.InsertArticle(ctx, item); err != nil {
			return model.ContentItem{}, err
		}
	}
	return item, nil
}

// Feed returns the community feed: astrophoto, generic posts and
// discussions, newest first. The stored order is already recency-first, so
// no re-sort happens here.
func (c *Catalog) Feed() []model.ContentItem {
	var out []model.ContentItem
	for _, p := range c.repo.Posts() {
		switch p.Category {
		case model.CategoryAstrophoto, model.CategoryPost, model.CategoryDiscussion:
			out = append(out, p)
		}
	}
	return out
}

// NewsList returns the news collection, newest first.
func (c *Catalog) NewsList() []model.ContentItem {
	return c.repo.News()
}

// ArticlesList returns the articles collection, newest first.
func (c *Catalog) ArticlesList() []model.ContentItem {
	return c.repo.Articles()
}

// PostsByOwner returns the posts owned by the given account, preserving
// stored order.
func (c *Catalog) PostsByOwner(accountID string) []model.ContentItem {
	var out []model.ContentItem
	for _, p := range c.repo.Posts() {
		if p.OwnerID == accountID {
			out = append(out, p)
		}
	}
	return out
}

// DeleteItem removes the item from every content collection. Deleting an
// unknown id is a successful no-op.
func (c *Catalog) DeleteItem(ctx context.Context, id int64) error {
	return c.repo.RemoveContent(ctx, id)
}
