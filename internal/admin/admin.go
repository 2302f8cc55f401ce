// Package admin bundles the inspection and destructive operations reachable
// from trusted local tooling. The core performs no confirmation gating: the
// caller is expected to confirm before invoking anything destructive.
package admin

import (
	"context"

	"github.com/astrogid/astrogid/internal/feedback"
	"github.com/astrogid/astrogid/internal/model"
	"github.com/astrogid/astrogid/internal/repository"
	"github.com/astrogid/astrogid/internal/session"
)

// AccountSummary is a listing row: the account's public fields plus its
// publication count. Secret material is deliberately absent.
type AccountSummary struct {
	ID           string
	Name         string
	Email        string
	Avatar       string
	Bio          string
	RegisteredAt string
	Posts        int
}

// Utilities operates directly on the repository, session and feedback log.
type Utilities struct {
	repo     *repository.Repository
	sessions *session.Manager
	feedback *feedback.Log
}

// New wires the admin utilities.
func New(repo *repository.Repository, sessions *session.Manager, fb *feedback.Log) *Utilities {
	return &Utilities{repo: repo, sessions: sessions, feedback: fb}
}

// ListAccounts returns every registered account (guests never reach the
// accounts collection, but the filter is kept as a guard) with its post
// count, in registration order.
func (u *Utilities) ListAccounts(ctx context.Context) []AccountSummary {
	posts := u.repo.Posts()
	counts := make(map[string]int, len(posts))
	for _, p := range posts {
		counts[p.OwnerID]++
	}

	var out []AccountSummary
	for _, a := range u.repo.Accounts() {
		if a.Guest {
			continue
		}
		out = append(out, AccountSummary{
			ID:           a.ID,
			Name:         a.Name,
			Email:        a.Email,
			Avatar:       a.Avatar,
			Bio:          a.Bio,
			RegisteredAt: a.RegisteredAt.Format("2006-01-02"),
			Posts:        counts[a.ID],
		})
	}
	return out
}

// ListFeedback returns the stored feedback messages, newest first.
func (u *Utilities) ListFeedback(ctx context.Context) ([]model.FeedbackMessage, error) {
	return u.feedback.List(ctx)
}

// PurgeFeedback deletes every feedback message.
func (u *Utilities) PurgeFeedback(ctx context.Context) error {
	return u.feedback.Clear(ctx)
}

// PurgeAll wipes accounts and content, restores the seed news/articles and
// forces the session back to anonymous.
func (u *Utilities) PurgeAll(ctx context.Context) error {
	if err := u.repo.PurgeAll(ctx); err != nil {
		return err
	}
	return u.sessions.Logout(ctx)
}

// QuickLogin signs into the account with the given email, bypassing the
// credential check.
func (u *Utilities) QuickLogin(ctx context.Context, email string) (model.Account, error) {
	return u.sessions.QuickLogin(ctx, email)
}
