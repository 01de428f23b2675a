// Package notification delivers domain notifications over mail and webhook
// channels. Delivery runs on a worker pool so callers never wait on SMTP or
// a remote endpoint.
package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/htoohtoo/storefront/config"
	"github.com/htoohtoo/storefront/pkg/logger"
	"github.com/htoohtoo/storefront/pkg/mail"
	"github.com/htoohtoo/storefront/pkg/workerpool"
)

// Notification is implemented by each concrete notification type.
// Via names the channels to use; the To* builders supply channel payloads.
type Notification interface {
	Via() []string
	ToMail() *mail.Message
	ToWebhook() any
}

type Dispatcher struct {
	pool   *workerpool.Pool
	client *http.Client
}

func NewDispatcher(pool *workerpool.Pool) *Dispatcher {
	return &Dispatcher{
		pool:   pool,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Send queues delivery on every channel the notification names. Errors are
// logged, never returned: a failed confirmation email must not undo an order.
func (d *Dispatcher) Send(n Notification) {
	for _, channel := range n.Via() {
		switch channel {
		case "mail":
			d.submit("mail", func() error {
				msg := n.ToMail()
				if msg == nil {
					return nil
				}
				return msg.Send()
			})
		case "webhook":
			d.submit("webhook", func() error {
				return d.postWebhook(n.ToWebhook())
			})
		default:
			logger.Warn("notification: unknown channel", "channel", channel)
		}
	}
}

func (d *Dispatcher) submit(channel string, fn func() error) {
	err := d.pool.Submit(func() {
		if err := fn(); err != nil {
			logger.Error("notification: delivery failed", "channel", channel, "error", err)
		}
	})
	if err != nil {
		logger.Error("notification: could not queue delivery", "channel", channel, "error", err)
	}
}

func (d *Dispatcher) postWebhook(payload any) error {
	url := config.OrderWebhookURL()
	if url == "" || payload == nil {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := d.client.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned %d", resp.StatusCode)
	}
	return nil
}
