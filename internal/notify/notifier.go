// Package notify sends admin emails when catalog entities are created.
// Delivery is best-effort: the catalog write path logs a failed send and
// carries on.
package notify

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Sender is satisfied by *gomail.Dialer.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Notifier struct {
	Sender Sender
	From   string
}

func NewNotifier(host string, port int, user, password, from string) *Notifier {
	return &Notifier{
		Sender: gomail.NewDialer(host, port, user, password),
		From:   from,
	}
}

// EntityCreated mails every recipient. An empty recipient list is a silent
// skip, not an error.
func (n *Notifier) EntityCreated(subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.From)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.Sender.DialAndSend(m); err != nil {
		return fmt.Errorf("notify: send %q: %w", subject, err)
	}
	return nil
}
