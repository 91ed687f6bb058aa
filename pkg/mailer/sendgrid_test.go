package mailer

import (
	"context"
	"testing"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(sendFunc func(*mail.SGMailV3) (*Response, error)) *Client {
	return &Client{
		apiKey:   "test",
		from:     mail.NewEmail("Vedic Wisdom", "reports@vedicwisdom.in"),
		sendFunc: sendFunc,
	}
}

func TestSendAttachesPDF(t *testing.T) {
	var captured *mail.SGMailV3
	client := testClient(func(message *mail.SGMailV3) (*Response, error) {
		captured = message
		return &Response{StatusCode: 202}, nil
	})

	err := client.Send(context.Background(), Message{
		ToEmail: "lead@example.com",
		ToName:  "Test",
		Subject: "Your report",
		HTML:    "<p>hi</p>",
		Attachment: &Attachment{
			Filename:    "Vedic_Report_2026_Test.pdf",
			ContentType: "application/pdf",
			Content:     []byte("%PDF-1.4"),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, captured)
	require.Len(t, captured.Attachments, 1)
	assert.Equal(t, "Vedic_Report_2026_Test.pdf", captured.Attachments[0].Filename)
	assert.Equal(t, "application/pdf", captured.Attachments[0].Type)
}

func TestSendRejectsMissingRecipient(t *testing.T) {
	client := testClient(func(*mail.SGMailV3) (*Response, error) {
		t.Fatal("send should not be called")
		return nil, nil
	})
	err := client.Send(context.Background(), Message{Subject: "x"})
	require.Error(t, err)
}

func TestSendSurfacesProviderRejection(t *testing.T) {
	client := testClient(func(*mail.SGMailV3) (*Response, error) {
		return &Response{StatusCode: 403, Body: "forbidden"}, nil
	})
	err := client.Send(context.Background(), Message{ToEmail: "lead@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
