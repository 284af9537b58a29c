package twilioclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Vinay-K-Rajith/ChatPilot-sub001/config"
)

//go:generate moq -out mocks.go . ContentAPI MessageAPI

// ErrNotConfigured is returned when no Twilio credentials were
// provided. Callers must treat it as "status unknown", never as a
// rejection.
var ErrNotConfigured = errors.New("twilio credentials not configured")

// ApprovalStatus is the authority's answer for one content template
type ApprovalStatus struct {
	Name   string
	Status string
}

// ContentAPI is the template approval authority
type ContentAPI interface {
	FetchApprovalStatus(ctx context.Context, contentSid string) (ApprovalStatus, error)
}

// MessageAPI is the outbound message transport. The returned bool
// means accepted for delivery, not delivered.
type MessageAPI interface {
	SendContent(ctx context.Context, to string, contentSid string, variables map[string]string) (bool, error)
}

const (
	defaultContentBaseURL   = "https://content.twilio.com"
	defaultMessagingBaseURL = "https://api.twilio.com"
	defaultRequestTimeout   = 15 * time.Second
)

// Client implements ContentAPI and MessageAPI against the Twilio
// Content and Messaging APIs
type Client struct {
	logger     *zap.Logger
	httpClient *http.Client

	accountSid string
	authToken  string
	fromNumber string

	contentBaseURL   string
	messagingBaseURL string
}

var _ ContentAPI = &Client{}
var _ MessageAPI = &Client{}

// New ...
func New(conf config.TwilioConfig, logger *zap.Logger) *Client {
	timeout := defaultRequestTimeout
	if conf.RequestTimeoutSeconds > 0 {
		timeout = time.Duration(conf.RequestTimeoutSeconds) * time.Second
	}

	contentBase := conf.ContentBaseURL
	if contentBase == "" {
		contentBase = defaultContentBaseURL
	}
	messagingBase := conf.MessagingBaseURL
	if messagingBase == "" {
		messagingBase = defaultMessagingBaseURL
	}

	return &Client{
		logger:     logger.With(zap.String("client", "twilio")),
		httpClient: &http.Client{Timeout: timeout},

		accountSid: conf.AccountSid,
		authToken:  conf.AuthToken,
		fromNumber: conf.FromNumber,

		contentBaseURL:   strings.TrimSuffix(contentBase, "/"),
		messagingBaseURL: strings.TrimSuffix(messagingBase, "/"),
	}
}

type approvalRequestsResponse struct {
	Whatsapp struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	} `json:"whatsapp"`
}

type messageResponse struct {
	Sid    string `json:"sid"`
	Status string `json:"status"`
}

type apiErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FetchApprovalStatus queries the WhatsApp approval request attached
// to a content template
func (c *Client) FetchApprovalStatus(ctx context.Context, contentSid string) (ApprovalStatus, error) {
	if c.accountSid == "" || c.authToken == "" {
		return ApprovalStatus{}, ErrNotConfigured
	}

	reqURL := fmt.Sprintf("%s/v1/Content/%s/ApprovalRequests", c.contentBaseURL, contentSid)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return ApprovalStatus{}, err
	}
	req.SetBasicAuth(c.accountSid, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ApprovalStatus{}, fmt.Errorf("fetch approval status: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ApprovalStatus{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return ApprovalStatus{}, apiError("fetch approval status", resp.StatusCode, body)
	}

	var parsed approvalRequestsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ApprovalStatus{}, fmt.Errorf("fetch approval status: decode response: %w", err)
	}

	return ApprovalStatus{
		Name:   parsed.Whatsapp.Name,
		Status: parsed.Whatsapp.Status,
	}, nil
}

// SendContent submits one templated message to a recipient
func (c *Client) SendContent(
	ctx context.Context, to string, contentSid string, variables map[string]string,
) (bool, error) {
	if c.accountSid == "" || c.authToken == "" {
		return false, ErrNotConfigured
	}

	contentVariables, err := json.Marshal(variables)
	if err != nil {
		return false, err
	}

	form := url.Values{}
	form.Set("To", whatsappAddress(to))
	form.Set("From", whatsappAddress(c.fromNumber))
	form.Set("ContentSid", contentSid)
	form.Set("ContentVariables", string(contentVariables))

	reqURL := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.messagingBaseURL, c.accountSid)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.SetBasicAuth(c.accountSid, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("send content message: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return false, apiError("send content message", resp.StatusCode, body)
	}

	var parsed messageResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return false, fmt.Errorf("send content message: decode response: %w", err)
	}

	c.logger.Debug("message accepted by transport",
		zap.String("sid", parsed.Sid),
		zap.String("status", parsed.Status),
	)
	return true, nil
}

func apiError(op string, statusCode int, body []byte) error {
	var parsed apiErrorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return fmt.Errorf("%s: %s (status %d, code %d)", op, parsed.Message, statusCode, parsed.Code)
	}
	return fmt.Errorf("%s: unexpected status %d", op, statusCode)
}

func whatsappAddress(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}
