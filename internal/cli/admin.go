package cli

import (
	"context"
	"fmt"
)

func (a *App) listAccounts(ctx context.Context) {
	accounts := a.admin.ListAccounts(ctx)
	if len(accounts) == 0 {
		fmt.Fprintln(a.out, "No registered accounts.")
		return
	}
	for _, acc := range accounts {
		fmt.Fprintf(a.out, "%s <%s> registered %s, %d posts\n",
			acc.Name, acc.Email, acc.RegisteredAt, acc.Posts)
	}
}

func (a *App) listMessages(ctx context.Context) {
	msgs, err := a.admin.ListFeedback(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	if len(msgs) == 0 {
		fmt.Fprintln(a.out, "No feedback messages.")
		return
	}
	for _, msg := range msgs {
		fmt.Fprintf(a.out, "[%d] %s <%s>: %s\n", msg.ID, msg.Name, msg.Email, msg.Body)
	}
}

func (a *App) purgeMessages(ctx context.Context) {
	if err := a.admin.PurgeFeedback(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintln(a.out, "Feedback messages purged.")
}

func (a *App) purgeAll(ctx context.Context) {
	confirm, err := getSimpleText(a.reader, "This wipes every account and restores the stock content. Type 'yes' to proceed", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	if confirm != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}

	if err := a.admin.PurgeAll(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintln(a.out, "All accounts removed, stock content restored.")
}

func (a *App) quickLogin(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: quick-login <email>")
		return
	}

	acc, err := a.admin.QuickLogin(ctx, args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "Logged in as %s.\n", acc.Name)
}
