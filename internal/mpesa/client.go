package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	tokenPath = "/oauth/v1/generate?grant_type=client_credentials"
	pushPath  = "/mpesa/stkpush/v1/processrequest"

	transactionType  = "CustomerPayBillOnline"
	accountReference = "TastyBitesOrder"
	transactionDesc  = "Payment for Tasty Bites order"
)

// Config holds Daraja credentials and endpoints. Leaving ConsumerKey
// or ConsumerSecret empty puts the client in simulated mode.
type Config struct {
	ConsumerKey    string
	ConsumerSecret string
	ShortCode      string
	Passkey        string
	CallbackURL    string
	BaseURL        string
}

// StkPushResult is what the handler returns to the storefront. Data is
// the provider's raw response body when a real push was submitted.
type StkPushResult struct {
	Simulated bool            `json:"simulated"`
	Message   string          `json:"message,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// ProviderError carries the provider's error body so handlers can log
// the detail while returning a generic message to the caller.
type ProviderError struct {
	StatusCode int
	Detail     string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned %d: %s", e.StatusCode, e.Detail)
}

// Client talks to the Daraja STK push API.
type Client struct {
	cfg     Config
	client  *http.Client
	logger  *slog.Logger
	nowFunc func() time.Time
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		cfg:     cfg,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
		nowFunc: time.Now,
	}
}

// Configured reports whether real Daraja credentials are present.
func (c *Client) Configured() bool {
	return c.cfg.ConsumerKey != "" && c.cfg.ConsumerSecret != ""
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type pushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int    `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

// StkPush prompts the customer's phone to authorize a payment. Without
// credentials it simulates success so local development needs no Daraja
// account. A non-error return only means the push was accepted; the
// payment confirmation arrives later on the callback endpoint.
func (c *Client) StkPush(ctx context.Context, phone string, amount int) (*StkPushResult, error) {
	if !c.Configured() {
		c.logger.Info("simulating STK push",
			slog.String("phone", phone),
			slog.Int("amount", amount))
		return &StkPushResult{
			Simulated: true,
			Message:   "STK push simulated. Ask user to confirm on phone.",
		}, nil
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch access token: %w", err)
	}

	timestamp := c.nowFunc().Format("20060102150405")
	password := base64.StdEncoding.EncodeToString(
		[]byte(c.cfg.ShortCode + c.cfg.Passkey + timestamp))

	body := pushRequest{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   transactionType,
		Amount:            amount,
		PartyA:            "254" + phone,
		PartyB:            c.cfg.ShortCode,
		PhoneNumber:       "254" + phone,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  accountReference,
		TransactionDesc:   transactionDesc,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal push request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+pushPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit push request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read push response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Detail: string(respBody)}
	}

	return &StkPushResult{Simulated: false, Data: respBody}, nil
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+tokenPath, nil)
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request token: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &ProviderError{StatusCode: resp.StatusCode, Detail: string(respBody)}
	}

	var tok tokenResponse
	if err := json.Unmarshal(respBody, &tok); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}
	return tok.AccessToken, nil
}
