package cli

import (
	"context"
	"fmt"

	"github.com/astrogid/astrogid/internal/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) register(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	password, err := getPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	acc, err := a.sessions.Register(ctx, name, email, string(password))
	if err != nil {
		fmt.Fprintln(a.out, "Registration failed:", err)
		return
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", acc.Name)
}

func (a *App) login(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	password, err := getPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	acc, err := a.sessions.Login(ctx, email, string(password))
	if err != nil {
		fmt.Fprintln(a.out, "Login failed:", err)
		return
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", acc.Name)
}

func (a *App) guest(ctx context.Context) {
	if err := a.sessions.EnterGuest(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintln(a.out, "Browsing as guest.")
}

func (a *App) logout(ctx context.Context) {
	if err := a.sessions.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintln(a.out, "Logged out.")
}

func (a *App) whoami() {
	cur := a.sessions.Current()
	switch cur.State {
	case session.Authenticated:
		fmt.Fprintf(a.out, "%s <%s>\n", cur.Name, cur.Email)
		if cur.Bio != "" {
			fmt.Fprintln(a.out, cur.Bio)
		}
	case session.Guest:
		fmt.Fprintln(a.out, "Guest")
	default:
		fmt.Fprintln(a.out, "Not logged in")
	}
}
