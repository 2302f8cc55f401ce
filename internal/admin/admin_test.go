package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrogid/astrogid/internal/catalog"
	"github.com/astrogid/astrogid/internal/feedback"
	"github.com/astrogid/astrogid/internal/logging"
	"github.com/astrogid/astrogid/internal/model"
	"github.com/astrogid/astrogid/internal/repository"
	"github.com/astrogid/astrogid/internal/session"
	"github.com/astrogid/astrogid/internal/storage"
)

type fixture struct {
	admin    *Utilities
	sessions *session.Manager
	catalog  *catalog.Catalog
	repo     *repository.Repository
	feedback *feedback.Log
}

func setup(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	s, err := storage.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	log := logging.Discard()
	r := repository.New(s, log)
	require.NoError(t, r.Load(ctx))
	m := session.NewManager(r, s, log)
	require.NoError(t, m.Load(ctx))
	fb := feedback.New(s, log, 0)

	return fixture{
		admin:    New(r, m, fb),
		sessions: m,
		catalog:  catalog.New(r),
		repo:     r,
		feedback: fb,
	}
}

func TestListAccounts_WithPostCounts(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	ana, err := f.sessions.Register(ctx, "Ana", "ana@x.com", "secret1")
	require.NoError(t, err)
	_, err = f.sessions.Register(ctx, "Bo", "bo@x.com", "secret2")
	require.NoError(t, err)

	_, err = f.catalog.Publish(ctx, ana.ID, model.CategoryAstrophoto, "p1", "d", "img")
	require.NoError(t, err)
	_, err = f.catalog.Publish(ctx, ana.ID, model.CategoryNews, "p2", "d", "img")
	require.NoError(t, err)

	list := f.admin.ListAccounts(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", list[0].Name)
	assert.Equal(t, 2, list[0].Posts)
	assert.Equal(t, 0, list[1].Posts)
}

func TestPurgeFeedback(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.feedback.Append(ctx, "Ana", "ana@x.com", "hello")
	require.NoError(t, err)
	require.NoError(t, f.admin.PurgeFeedback(ctx))

	msgs, err := f.admin.ListFeedback(ctx)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestPurgeAll_ResetsEverything(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	ana, err := f.sessions.Register(ctx, "Ana", "ana@x.com", "secret1")
	require.NoError(t, err)
	_, err = f.catalog.Publish(ctx, ana.ID, model.CategoryArticle, "t", "d", "img")
	require.NoError(t, err)

	require.NoError(t, f.admin.PurgeAll(ctx))

	assert.Empty(t, f.repo.Accounts())
	assert.Empty(t, f.repo.Posts())
	assert.Len(t, f.repo.News(), 2, "seeds restored")
	assert.Len(t, f.repo.Articles(), 4, "seeds restored")
	assert.Equal(t, session.Anonymous, f.sessions.Current().State)
}

func TestQuickLogin_BypassesSecret(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.sessions.Register(ctx, "Ana", "ana@x.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, f.sessions.Logout(ctx))

	acc, err := f.admin.QuickLogin(ctx, "ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", acc.Name)
	assert.Equal(t, session.Authenticated, f.sessions.Current().State)
}
