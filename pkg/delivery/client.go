package delivery

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/matzehuels/cardforge/pkg/card"
	"github.com/matzehuels/cardforge/pkg/errors"
	"github.com/matzehuels/cardforge/pkg/httputil"
	"github.com/matzehuels/cardforge/pkg/observability"
	"github.com/matzehuels/cardforge/pkg/validate"
)

// DefaultTimeout bounds a single delivery attempt.
const DefaultTimeout = 30 * time.Second

// teamsContentType is the attachment content type Teams expects for
// adaptive card payloads.
const teamsContentType = "application/vnd.microsoft.card.adaptive"

// Result reports the outcome of one delivery attempt. Success means the
// endpoint answered with a 2xx status.
type Result struct {
	Success    bool             `json:"success"`
	StatusCode int              `json:"status_code,omitempty"`
	Message    string           `json:"message"`
	DeliveryID string           `json:"delivery_id,omitempty"`
	Validation *validate.Report `json:"validation,omitempty"`
}

// Client delivers cards to a single webhook endpoint.
type Client struct {
	platform      string
	webhookURL    string
	http          *resty.Client
	validator     *validate.Validator
	retryAttempts int
	retryDelay    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// WithValidator replaces the validator derived from the platform name,
// typically with one built from a profile override file.
func WithValidator(v *validate.Validator) Option {
	return func(c *Client) { c.validator = v }
}

// WithRetry overrides the retry policy for transient failures.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		c.retryAttempts = attempts
		c.retryDelay = delay
	}
}

// New builds a client for the given webhook URL and platform. The platform
// must be a supported target; an unknown platform is a configuration error
// and fails here rather than at send time.
func New(webhookURL, platform string, opts ...Option) (*Client, error) {
	platform = strings.ToLower(platform)
	if platform == "" {
		platform = validate.DefaultTarget
	}

	validator, err := validate.New(platform)
	if err != nil {
		return nil, err
	}

	if webhookURL != "" {
		if err := errors.ValidateWebhookURL(webhookURL); err != nil {
			return nil, err
		}
	}

	c := &Client{
		platform:      platform,
		webhookURL:    webhookURL,
		validator:     validator,
		retryAttempts: 3,
		retryDelay:    time.Second,
		http: resty.New().
			SetTimeout(DefaultTimeout).
			SetHeader("Content-Type", "application/json"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetWebhookURL updates the endpoint the client delivers to.
func (c *Client) SetWebhookURL(webhookURL string) error {
	if err := errors.ValidateWebhookURL(webhookURL); err != nil {
		return err
	}
	c.webhookURL = webhookURL
	return nil
}

// Platform returns the target platform this client delivers to.
func (c *Client) Platform() string { return c.platform }

// Validate runs the platform's validation profile against a card without
// sending it.
func (c *Client) Validate(crd *card.Card) validate.Report {
	return c.validator.Validate(crd)
}

// Send validates the card and, if it passes, delivers it. The validation
// report is always attached to the result; an invalid card is never sent.
func (c *Client) Send(ctx context.Context, crd *card.Card) *Result {
	report := c.validator.Validate(crd)
	if !report.Valid {
		return &Result{
			Success:    false,
			Message:    "Card validation failed. See validation details.",
			Validation: &report,
		}
	}

	result := c.deliver(ctx, crd)
	result.Validation = &report
	return result
}

// SendUnchecked delivers the card without validating it first. The endpoint
// may still reject it.
func (c *Client) SendUnchecked(ctx context.Context, crd *card.Card) *Result {
	return c.deliver(ctx, crd)
}

// Status reports the state of a previous delivery. Webhook endpoints offer
// no delivery tracking, so this always reports unsupported; the method
// exists so callers do not have to special-case webhook targets.
func (c *Client) Status(deliveryID string) *Result {
	return &Result{
		DeliveryID: deliveryID,
		Message:    "Delivery status tracking is not supported by the target platform",
	}
}

func (c *Client) deliver(ctx context.Context, crd *card.Card) *Result {
	if c.webhookURL == "" {
		return &Result{
			Success: false,
			Message: "No webhook URL configured. Use SetWebhookURL first.",
		}
	}

	deliveryID := uuid.NewString()
	payload := envelope(crd)

	host, path := endpointParts(c.webhookURL)
	hooks := observability.Pipeline()
	hooks.OnDeliverStart(ctx, c.platform)
	start := time.Now()

	// resty returns a non-nil response even on transport failures, so the
	// last transport error is tracked separately to tell "never reached the
	// endpoint" apart from "endpoint said no".
	var resp *resty.Response
	var transportErr error
	err := httputil.Retry(ctx, c.retryAttempts, c.retryDelay, func() error {
		observability.HTTP().OnRequest(ctx, "POST", host, path)

		var reqErr error
		resp, reqErr = c.http.R().
			SetContext(ctx).
			SetBody(payload).
			Post(c.webhookURL)
		if reqErr != nil {
			transportErr = reqErr
			observability.HTTP().OnError(ctx, "POST", host, path, reqErr)
			return &httputil.RetryableError{Err: reqErr}
		}
		transportErr = nil

		observability.HTTP().OnResponse(ctx, "POST", host, path, resp.StatusCode(), time.Since(start))
		if httputil.RetryableStatus(resp.StatusCode()) {
			return &httputil.RetryableError{
				Err: errors.New(errors.ErrCodeDeliveryFailed, "webhook returned status %d", resp.StatusCode()),
			}
		}
		return nil
	})

	result := &Result{DeliveryID: deliveryID}
	switch {
	case err != nil && (transportErr != nil || resp == nil):
		result.Message = fmt.Sprintf("Error delivering card: %v", err)
	case err != nil:
		result.StatusCode = resp.StatusCode()
		result.Message = fmt.Sprintf("Delivery failed: %s", resp.String())
	default:
		result.StatusCode = resp.StatusCode()
		result.Success = resp.StatusCode() >= 200 && resp.StatusCode() < 300
		if result.Success {
			result.Message = "Card delivered successfully"
		} else {
			result.Message = fmt.Sprintf("Delivery failed: %s", resp.String())
		}
	}

	hooks.OnDeliverComplete(ctx, c.platform, result.StatusCode, time.Since(start), err)
	return result
}

// envelope wraps a card in the platform's webhook payload shape. Every
// supported platform currently uses the Teams message/attachment shape.
func envelope(crd *card.Card) any {
	return map[string]any{
		"type": "message",
		"attachments": []map[string]any{
			{
				"contentType": teamsContentType,
				"content":     crd,
			},
		},
	}
}

func endpointParts(rawURL string) (host, path string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL, ""
	}
	return u.Host, u.Path
}
