package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/astrogid/astrogid/internal/session"
)

func (a *App) getStatus() string {
	cur := a.sessions.Current()
	switch cur.State {
	case session.Authenticated:
		return fmt.Sprintf("(%s)", cur.Name)
	case session.Guest:
		return "(guest)"
	default:
		return ""
	}
}

// Root runs the interactive loop. It reads a line, parses the first token as
// the command, and dispatches to handlers on a. Unknown commands are reported
// back to the user. The loop exits on EOF or when the user types "exit" or
// "quit".
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to AstroGid CLI (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "astrogid %s> ", a.getStatus())
		line, readErr := a.reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				return
			}
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()

		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "guest":
			a.guest(ctx)
		case "logout":
			a.logout(ctx)
		case "whoami":
			a.whoami()

		case "bio":
			a.editBio(ctx)
		case "avatar":
			a.setAvatar(ctx, args)

		case "publish":
			a.publish(ctx)
		case "feed":
			a.printItems(a.catalog.Feed())
		case "news":
			a.printItems(a.catalog.NewsList())
		case "articles":
			a.printItems(a.catalog.ArticlesList())
		case "mine":
			a.mine()
		case "delete":
			a.deleteItem(ctx, args)

		case "feedback":
			a.sendFeedback(ctx)

		case "accounts":
			a.listAccounts(ctx)
		case "messages":
			a.listMessages(ctx)
		case "purge-messages":
			a.purgeMessages(ctx)
		case "purge-all":
			a.purgeAll(ctx)
		case "quick-login":
			a.quickLogin(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}

		if readErr != nil {
			return
		}
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: whoami, bio, avatar <path>, publish, feed, news, articles, mine, delete <id>, feedback, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, guest, feed, news, articles, feedback, exit")
	}
}
