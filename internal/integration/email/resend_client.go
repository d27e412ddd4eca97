// Package email delivers transactional email via Resend.
package email

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/resend/resend-go/v2"

	"github.com/korven/backend/internal/application/adapter"
	domainerror "github.com/korven/backend/internal/domain/error"
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client *resend.Client
	from   string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client: resend.NewClient(apiKey),
		from:   fmt.Sprintf("%s <%s>", fromName, fromEmail),
	}
}

// NewResendClientAt creates a Resend client for a Resend-compatible API at baseURL.
func NewResendClientAt(baseURL, apiKey, fromName, fromEmail string) (*ResendClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid resend base url: %w", err)
	}
	c := NewResendClient(apiKey, fromName, fromEmail)
	c.client.BaseURL = u
	return c, nil
}

// Send sends an email via Resend.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	resp, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	})
	if err != nil {
		return nil, classifySendError(err)
	}

	return &adapter.SendEmailResult{ProviderID: resp.Id}, nil
}

// Rejections that will fail again on retry. Rate limits and 5xx are retried.
var permanentMarkers = []string{"401", "403", "422", "unauthorized", "forbidden", "validation", "bad request"}

func classifySendError(err error) error {
	msg := strings.ToLower(err.Error())
	for _, marker := range permanentMarkers {
		if strings.Contains(msg, marker) {
			return domainerror.NewEmailError(domainerror.ErrCodePermanentEmailFailure, "permanent email failure", err)
		}
	}
	return domainerror.NewEmailError(domainerror.ErrCodeTemporaryEmailFailure, "temporary email failure", err)
}

// RecordingSender keeps emails in memory instead of sending them.
// Used when no Resend API key is configured and by the integration suite.
type RecordingSender struct {
	mu   sync.Mutex
	sent []adapter.SendEmailInput
	fail error
}

// NewRecordingSender creates an empty RecordingSender.
func NewRecordingSender() *RecordingSender {
	return &RecordingSender{}
}

// Send records the email, or returns the configured failure.
func (r *RecordingSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.fail != nil {
		return nil, r.fail
	}
	r.sent = append(r.sent, input)
	return &adapter.SendEmailResult{ProviderID: fmt.Sprintf("local-%d", len(r.sent))}, nil
}

// FailWith makes subsequent sends return err. A nil err clears the failure.
func (r *RecordingSender) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fail = err
}

// Sent returns a copy of the recorded emails.
func (r *RecordingSender) Sent() []adapter.SendEmailInput {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]adapter.SendEmailInput(nil), r.sent...)
}

// Reset drops recorded emails and any configured failure.
func (r *RecordingSender) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = nil
	r.fail = nil
}

var (
	_ adapter.EmailSender = (*ResendClient)(nil)
	_ adapter.EmailSender = (*RecordingSender)(nil)
)
