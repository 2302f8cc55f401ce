// Package notify composes feedback messages for delivery handoff. Actual
// delivery is outside the core: a Deliverer receives the composed message
// and does whatever sending means in its context (the default just surfaces
// the mailto link).
package notify

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/astrogid/astrogid/internal/logging"
	"github.com/astrogid/astrogid/internal/model"
)

// Delivery is a fully composed outbound message.
type Delivery struct {
	To        string
	Subject   string
	Body      string
	MailtoURL string
}

// Deliverer hands a composed message off for delivery.
type Deliverer interface {
	Deliver(ctx context.Context, d Delivery) error
}

// Composer builds deliveries for the site's contact mailbox.
type Composer struct {
	SiteName     string
	ContactEmail string
}

// Compose renders msg into a delivery addressed to the contact mailbox,
// including a mailto URL the presentation layer can open directly.
func (c Composer) Compose(msg model.FeedbackMessage) Delivery {
	subject := fmt.Sprintf("Message from %s via %s", msg.Name, c.SiteName)

	var b strings.Builder
	fmt.Fprintf(&b, "New message from the %s contact form:\n\n", c.SiteName)
	fmt.Fprintf(&b, "Name: %s\n", msg.Name)
	fmt.Fprintf(&b, "Email: %s\n", msg.Email)
	fmt.Fprintf(&b, "Sent: %s\n\n", msg.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Message:\n%s\n\n", msg.Body)
	fmt.Fprintf(&b, "Reply to: %s\n", msg.Email)
	body := b.String()

	q := url.Values{}
	q.Set("subject", subject)
	q.Set("body", body)

	return Delivery{
		To:        c.ContactEmail,
		Subject:   subject,
		Body:      body,
		MailtoURL: "mailto:" + c.ContactEmail + "?" + q.Encode(),
	}
}

// LogDeliverer "delivers" by logging the mailto link; the thinnest possible
// handoff for a CLI front end.
type LogDeliverer struct {
	Log logging.Logger
}

func (d LogDeliverer) Deliver(ctx context.Context, msg Delivery) error {
	d.Log.Info(ctx, "feedback ready for delivery", "to", msg.To, "subject", msg.Subject)
	return nil
}
