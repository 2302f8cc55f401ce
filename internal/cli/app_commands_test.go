package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrogid/astrogid/internal/admin"
	"github.com/astrogid/astrogid/internal/catalog"
	"github.com/astrogid/astrogid/internal/config"
	"github.com/astrogid/astrogid/internal/feedback"
	"github.com/astrogid/astrogid/internal/logging"
	"github.com/astrogid/astrogid/internal/notify"
	"github.com/astrogid/astrogid/internal/repository"
	"github.com/astrogid/astrogid/internal/session"
	"github.com/astrogid/astrogid/internal/storage"
)

// ------------ helpers ------------

func newTestApp(t *testing.T, input string) (*App, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()

	store, err := storage.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	log := logging.Discard()

	repo := repository.New(store, log)
	require.NoError(t, repo.Load(ctx))

	sessions := session.NewManager(repo, store, log)
	require.NoError(t, sessions.Load(ctx))

	fb := feedback.New(store, log, 50)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	var out bytes.Buffer
	app := &App{
		config:    cfg,
		log:       log,
		store:     store,
		repo:      repo,
		sessions:  sessions,
		catalog:   catalog.New(repo),
		feedback:  fb,
		admin:     admin.New(repo, sessions, fb),
		composer:  notify.Composer{SiteName: cfg.SiteName, ContactEmail: cfg.ContactEmail},
		deliverer: notify.LogDeliverer{Log: log},
		reader:    bufio.NewReader(strings.NewReader(input)),
		out:       &out,
	}
	return app, &out
}

func stubPassword(t *testing.T, secret string) {
	t.Helper()
	old := getPassword
	t.Cleanup(func() { getPassword = old })
	getPassword = func(_ io.Writer) ([]byte, error) {
		return []byte(secret), nil
	}
}

// ------------ tests ------------

func TestRegisterCommand(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t, "Alice\nalice@example.com\n")
	stubPassword(t, "secret123")

	app.register(ctx)

	assert.Contains(t, out.String(), "Welcome, Alice!")
	_, ok := app.repo.AccountByEmail("alice@example.com")
	assert.True(t, ok)
	assert.Equal(t, session.Authenticated, app.sessions.Current().State)
}

func TestLoginCommand_WrongPassword(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t, "alice@example.com\n")
	_, err := app.sessions.Register(ctx, "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, app.sessions.Logout(ctx))

	stubPassword(t, "wrong")
	app.login(ctx)

	assert.Contains(t, out.String(), "Login failed")
	assert.NotEqual(t, session.Authenticated, app.sessions.Current().State)
}

func TestPublishAndMine(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t, "article\nFirst light\nA report from the backyard.\n\n\n")
	_, err := app.sessions.Register(ctx, "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	app.publish(ctx)
	assert.Contains(t, out.String(), "Published \"First light\"")

	out.Reset()
	app.mine()
	assert.Contains(t, out.String(), "First light")
}

func TestPublish_RequiresLogin(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t, "")

	app.publish(ctx)

	assert.Contains(t, out.String(), "Log in to publish.")
}

func TestDelete_OwnPostsOnly(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t, "")
	_, err := app.sessions.Register(ctx, "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	// stock article, not Alice's
	app.deleteItem(ctx, []string{"101"})

	assert.Contains(t, out.String(), "You can only delete your own posts.")
	assert.Len(t, app.catalog.ArticlesList(), 4)
}

func TestFeedbackCommand_AsGuest(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t, "Bob\nbob@example.com\nGreat site!\n\n")
	require.NoError(t, app.sessions.EnterGuest(ctx))

	app.sendFeedback(ctx)

	assert.Contains(t, out.String(), "mailto:")
	msgs, err := app.feedback.List(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "Bob", msgs[0].Name)
}

func TestQuickLoginCommand(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t, "")
	_, err := app.sessions.Register(ctx, "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	require.NoError(t, app.sessions.Logout(ctx))

	app.quickLogin(ctx, []string{"alice@example.com"})

	assert.Contains(t, out.String(), "Logged in as Alice.")
	assert.Equal(t, session.Authenticated, app.sessions.Current().State)
}

func TestPurgeAll_RequiresConfirmation(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t, "no\n")
	_, err := app.sessions.Register(ctx, "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	app.purgeAll(ctx)

	assert.Contains(t, out.String(), "Cancelled.")
	assert.Len(t, app.admin.ListAccounts(ctx), 1)
}

func TestPurgeAll_Confirmed(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t, "yes\n")
	_, err := app.sessions.Register(ctx, "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	app.purgeAll(ctx)

	assert.Contains(t, out.String(), "stock content restored")
	assert.Empty(t, app.admin.ListAccounts(ctx))
	assert.Equal(t, session.Anonymous, app.sessions.Current().State)
}
