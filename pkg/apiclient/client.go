// Package apiclient is a small HTTP client for the wallet API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	return nil
}

type Client struct {
	base  string
	http  *http.Client
	token string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(baseURL, "/"),
		http: &http.Client{Timeout: 30 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Token returns the bearer token set by the last Login or Register.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader

	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}

		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var e struct {
			Error string `json:"error"`
		}

		_ = json.NewDecoder(resp.Body).Decode(&e)

		return &APIError{Status: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}

	return nil
}

func (c *Client) Login(ctx context.Context, mobile, password string) (User, error) {
	var out session

	err := c.do(ctx, http.MethodPost, "/auth/login",
		map[string]string{"mobile": mobile, "password": password}, &out)
	if err != nil {
		return User{}, err
	}

	c.token = out.Token

	return out.User, nil
}

func (c *Client) Register(ctx context.Context, mobile, password, name string) (User, error) {
	var out session

	err := c.do(ctx, http.MethodPost, "/auth/register",
		map[string]string{"mobile": mobile, "password": password, "name": name}, &out)
	if err != nil {
		return User{}, err
	}

	c.token = out.Token

	return out.User, nil
}

func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	if err != nil {
		return err
	}

	c.token = ""

	return nil
}

func (c *Client) Wallet(ctx context.Context) (User, error) {
	var out User

	err := c.do(ctx, http.MethodGet, "/wallet", nil, &out)

	return out, err
}

// Transactions lists history; filter is all, deposit, withdraw or reward.
func (c *Client) Transactions(ctx context.Context, filter string) ([]Transaction, error) {
	var out struct {
		Transactions []Transaction `json:"transactions"`
	}

	path := "/wallet/transactions"
	if filter != "" {
		path += "?filter=" + url.QueryEscape(filter)
	}

	err := c.do(ctx, http.MethodGet, path, nil, &out)

	return out.Transactions, err
}

func (c *Client) Deposit(ctx context.Context, amount int64) (Receipt, error) {
	var out Receipt

	err := c.do(ctx, http.MethodPost, "/wallet/deposit", map[string]int64{"amount": amount}, &out)

	return out, err
}

func (c *Client) Withdraw(ctx context.Context, method string, amount int64, destination string) (Receipt, error) {
	var out Receipt

	err := c.do(ctx, http.MethodPost, "/wallet/withdraw", map[string]any{
		"method":      method,
		"amount":      amount,
		"destination": destination,
	}, &out)

	return out, err
}

func (c *Client) CreateLifafa(ctx context.Context, amount, quantity int64) (LifafaReceipt, error) {
	var out LifafaReceipt

	err := c.do(ctx, http.MethodPost, "/lifafa", map[string]int64{"amount": amount, "quantity": quantity}, &out)

	return out, err
}

func (c *Client) ClaimLifafa(ctx context.Context, code string) (ClaimReceipt, error) {
	var out ClaimReceipt

	err := c.do(ctx, http.MethodPost, "/lifafa/claim", map[string]string{"code": code}, &out)

	return out, err
}

func (c *Client) Tasks(ctx context.Context) ([]Task, error) {
	var out struct {
		Tasks []Task `json:"tasks"`
	}

	err := c.do(ctx, http.MethodGet, "/tasks", nil, &out)

	return out.Tasks, err
}

func (c *Client) CompleteTask(ctx context.Context, taskID string) (Receipt, error) {
	var out Receipt

	err := c.do(ctx, http.MethodPost, "/tasks/"+url.PathEscape(taskID)+"/complete", nil, &out)

	return out, err
}

// Payouts fetches the recent payouts board.
func (c *Client) Payouts(ctx context.Context) (PayoutFeed, error) {
	var out PayoutFeed

	err := c.do(ctx, http.MethodGet, "/payouts", nil, &out)

	return out, err
}
