package cli

import (
	"context"
	"fmt"

	"github.com/astrogid/astrogid/internal/session"
)

func (a *App) sendFeedback(ctx context.Context) {
	cur := a.sessions.Current()

	name := cur.Name
	email := cur.Email
	if cur.State != session.Authenticated {
		var err error
		name, err = getSimpleText(a.reader, "Your name", a.out)
		if err != nil {
			a.log.Error(ctx, "input error", "error", err)
			return
		}
		email, err = getSimpleText(a.reader, "Your email", a.out)
		if err != nil {
			a.log.Error(ctx, "input error", "error", err)
			return
		}
	}

	body, err := GetMultiline(a.reader, "Your message", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	msg, err := a.feedback.Append(ctx, name, email, body)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	delivery := a.composer.Compose(msg)
	if err := a.deliverer.Deliver(ctx, delivery); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	fmt.Fprintln(a.out, "Thanks! Open this link to send it by mail:")
	fmt.Fprintln(a.out, delivery.MailtoURL)
}
