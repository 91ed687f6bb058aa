package mailer

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/vedicwisdom/funnel-backend/pkg/config"
	"github.com/vedicwisdom/funnel-backend/pkg/logger"
)

// Attachment is a single binary attachment on an outbound message.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message is the transport-agnostic outbound email shape.
type Message struct {
	ToEmail    string
	ToName     string
	Subject    string
	HTML       string
	PlainText  string
	Attachment *Attachment
}

// Sender delivers transactional email.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Client sends mail through SendGrid.
type Client struct {
	apiKey   string
	from     *mail.Email
	sendFunc func(message *mail.SGMailV3) (*Response, error)
}

// Response mirrors the subset of the SendGrid response we inspect.
type Response struct {
	StatusCode int
	Body       string
}

// NewClient builds a SendGrid-backed sender.
func NewClient(cfg config.SendgridConfig, logg *logger.Logger) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("sendgrid api key is required")
	}

	sg := sendgrid.NewSendClient(apiKey)
	sendFunc := func(message *mail.SGMailV3) (*Response, error) {
		resp, err := sg.Send(message)
		if err != nil {
			return nil, err
		}
		return &Response{StatusCode: resp.StatusCode, Body: resp.Body}, nil
	}

	return &Client{
		apiKey:   apiKey,
		from:     mail.NewEmail(cfg.FromName, cfg.DefaultFrom),
		sendFunc: sendFunc,
	}, nil
}

// Send delivers one message; non-2xx responses are returned as errors.
func (c *Client) Send(_ context.Context, msg Message) error {
	if c == nil || c.sendFunc == nil {
		return errors.New("mailer not initialized")
	}
	if msg.ToEmail == "" {
		return errors.New("recipient email is required")
	}

	to := mail.NewEmail(msg.ToName, msg.ToEmail)
	plain := msg.PlainText
	if plain == "" {
		plain = "Your report is attached."
	}
	message := mail.NewSingleEmail(c.from, msg.Subject, to, plain, msg.HTML)

	if msg.Attachment != nil {
		attachment := mail.NewAttachment()
		attachment.SetFilename(msg.Attachment.Filename)
		attachment.SetType(msg.Attachment.ContentType)
		attachment.SetContent(base64.StdEncoding.EncodeToString(msg.Attachment.Content))
		attachment.SetDisposition("attachment")
		message.AddAttachment(attachment)
	}

	resp, err := c.sendFunc(message)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected message: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
