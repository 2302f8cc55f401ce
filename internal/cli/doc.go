// Package cli provides the interactive AstroGid command-line client.
//
// It wires configuration, the local SQLite store, the content and session
// services, and an interactive REPL. Typical flow: restore the persisted
// session, browse or publish content, and execute user commands.
//
// Key features:
//   - Register / Login / guest browsing / Logout
//   - Publish posts, news and articles
//   - Browse the feed, news, articles and own posts
//   - Profile editing: bio and avatar
//   - Feedback messages with a mailto handoff
//   - Admin utilities: account and message listings, purges, quick login
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
