// Package repository holds the typed entity collections and keeps them in
// sync with the persistent store. Collections live in memory; every mutation
// re-serializes all four collections and writes them through before
// returning. There is no delta persistence: the design trades write
// amplification for the guarantee that what is on disk always matches what
// is in memory.
package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/astrogid/astrogid/internal/errs"
	"github.com/astrogid/astrogid/internal/logging"
	"github.com/astrogid/astrogid/internal/model"
	"github.com/astrogid/astrogid/internal/storage"
)

// Repository owns the four entity collections. Accounts keep insertion
// order; the three content collections are recency-first (new items are
// prepended).
type Repository struct {
	store *storage.Store
	log   logging.Logger

	accounts []model.Account
	posts    []model.ContentItem
	news     []model.ContentItem
	articles []model.ContentItem

	lastContentID int64
}

// New returns a Repository bound to the given store. Call Load before use.
func New(store *storage.Store, log logging.Logger) *Repository {
	return &Repository{store: store, log: log}
}

// Load deserializes every collection from the store. A missing or corrupt
// collection initializes to empty; the store being unreadable degrades the
// same way. If the news or articles collection is empty after loading, it is
// populated with the built-in seed records and persisted once.
func (r *Repository) Load(ctx context.Context) error {
	r.accounts = loadCollection[model.Account](ctx, r, storage.KeyAccounts)
	r.posts = loadCollection[model.ContentItem](ctx, r, storage.KeyPosts)
	r.news = loadCollection[model.ContentItem](ctx, r, storage.KeyNews)
	r.articles = loadCollection[model.ContentItem](ctx, r, storage.KeyArticles)

	seeded := false
	if len(r.news) == 0 {
		r.news = seedNews()
		seeded = true
	}
	if len(r.articles) == 0 {
		r.articles = seedArticles()
		seeded = true
	}

	r.lastContentID = maxContentID(r.posts, r.news, r.articles)

	if seeded {
		if err := r.flush(ctx); err != nil {
			return err
		}
	}
	return nil
}

func loadCollection[T any](ctx context.Context, r *Repository, key string) []T {
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		r.log.Warn(ctx, "collection unreadable, starting empty", "key", key, "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		r.log.Warn(ctx, "collection corrupt, starting empty", "key", key, "error", err)
		return nil
	}
	return items
}

func maxContentID(collections ...[]model.ContentItem) int64 {
	var max int64
	for _, items := range collections {
		for _, it := range items {
			if it.ID > max {
				max = it.ID
			}
		}
	}
	return max
}

// flush serializes all four collections and writes them through the store.
func (r *Repository) flush(ctx context.Context) error {
	for _, c := range []struct {
		key   string
		items any
	}{
		{storage.KeyAccounts, r.accounts},
		{storage.KeyPosts, r.posts},
		{storage.KeyNews, r.news},
		{storage.KeyArticles, r.articles},
	} {
		raw, err := json.Marshal(c.items)
		if err != nil {
			return err
		}
		if err := r.store.Set(ctx, c.key, raw); err != nil {
			return err
		}
	}
	return nil
}

// NextContentID returns an identifier strictly greater than every id handed
// out or loaded so far. Ids are unix-millisecond timestamps bumped forward
// on collision, so creation order is preserved across restarts.
func (r *Repository) NextContentID() int64 {
	id := time.Now().UnixMilli()
	if id <= r.lastContentID {
		id = r.lastContentID + 1
	}
	r.lastContentID = id
	return id
}

// --- accounts ---

// Accounts returns a copy of the account collection in registration order.
func (r *Repository) Accounts() []model.Account {
	out := make([]model.Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

// AccountByID looks an account up by its identifier.
func (r *Repository) AccountByID(id string) (model.Account, bool) {
	for _, a := range r.accounts {
		if a.ID == id {
			return a, true
		}
	}
	return model.Account{}, false
}

// AccountByEmail looks an account up by email, case-insensitively.
func (r *Repository) AccountByEmail(email string) (model.Account, bool) {
	for _, a := range r.accounts {
		if strings.EqualFold(a.Email, email) {
			return a, true
		}
	}
	return model.Account{}, false
}

// AddAccount appends a new account and persists.
func (r *Repository) AddAccount(ctx context.Context, acc model.Account) error {
	r.accounts = append(r.accounts, acc)
	return r.flush(ctx)
}

// SaveAccount replaces the stored account with the same id and persists.
func (r *Repository) SaveAccount(ctx context.Context, acc model.Account) error {
	for i := range r.accounts {
		if r.accounts[i].ID == acc.ID {
			r.accounts[i] = acc
			return r.flush(ctx)
		}
	}
	return errs.ErrNotFound
}

// --- content ---

// Posts returns a copy of the posts collection, newest first.
func (r *Repository) Posts() []model.ContentItem {
	out := make([]model.ContentItem, len(r.posts))
	copy(out, r.posts)
	return out
}

// News returns a copy of the news collection, newest first.
func (r *Repository) News() []model.ContentItem {
	out := make([]model.ContentItem, len(r.news))
	copy(out, r.news)
	return out
}

// Articles returns a copy of the articles collection, newest first.
func (r *Repository) Articles() []model.ContentItem {
	out := make([]model.ContentItem, len(r.articles))
	copy(out, r.articles)
	return out
}

// InsertPost prepends an item to the posts collection and persists.
func (r *Repository) InsertPost(ctx context.Context, item model.ContentItem) error {
	r.posts = prepend(r.posts, item)
	r.noteContentID(item.ID)
	return r.flush(ctx)
}

// InsertNews prepends an item to the news collection and persists.
func (r *Repository) InsertNews(ctx context.Context, item model.ContentItem) error {
	r.news = prepend(r.news, item)
	r.noteContentID(item.ID)
	return r.flush(ctx)
}

// InsertArticle prepends an item to the articles collection and persists.
func (r *Repository) InsertArticle(ctx context.Context, item model.ContentItem) error {
	r.articles = prepend(r.articles, item)
	r.noteContentID(item.ID)
	return r.flush(ctx)
}

// RemoveContent deletes the item with the given id from every content
// collection. Removing an id that is nowhere to be found is a successful
// no-op and does not touch the store.
func (r *Repository) RemoveContent(ctx context.Context, id int64) error {
	removed := false
	r.posts, removed = removeByID(r.posts, id, removed)
	r.news, removed = removeByID(r.news, id, removed)
	r.articles, removed = removeByID(r.articles, id, removed)
	if !removed {
		return nil
	}
	return r.flush(ctx)
}

// SetOwnerAvatar rewrites the denormalized owner avatar on every content
// item owned by ownerID, across all three collections, and persists. This is
// the explicit propagation step that keeps point-in-time copies visually
// consistent after a profile edit.
func (r *Repository) SetOwnerAvatar(ctx context.Context, ownerID, avatar string) error {
	changed := false
	for _, items := range [][]model.ContentItem{r.posts, r.news, r.articles} {
		for i := range items {
			if items[i].OwnerID == ownerID && items[i].OwnerAvatar != avatar {
				items[i].OwnerAvatar = avatar
				changed = true
			}
		}
	}
	if !changed {
		return nil
	}
	return r.flush(ctx)
}

// PurgeAll clears every collection, restores the seed news/articles and
// persists. The caller is responsible for resetting the session.
func (r *Repository) PurgeAll(ctx context.Context) error {
	r.accounts = nil
	r.posts = nil
	r.news = seedNews()
	r.articles = seedArticles()
	r.lastContentID = maxContentID(r.news, r.articles)
	return r.flush(ctx)
}

func (r *Repository) noteContentID(id int64) {
	if id > r.lastContentID {
		r.lastContentID = id
	}
}

func prepend(items []model.ContentItem, item model.ContentItem) []model.ContentItem {
	return append([]model.ContentItem{item}, items...)
}

func removeByID(items []model.ContentItem, id int64, already bool) ([]model.ContentItem, bool) {
	out := items[:0]
	removed := already
	for _, it := range items {
		if it.ID == id {
			removed = true
			continue
		}
		out = append(out, it)
	}
	return out, removed
}
