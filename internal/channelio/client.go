package channelio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/chatlens/chatlens-backend/internal/config"
)

// Client talks to the remote chat platform's open API. Credentials are bound
// at construction; there is no ambient global state.
type Client struct {
	baseURL      string
	accessKey    string
	accessSecret string
	client       *http.Client
}

// NewClient creates a platform client from configuration.
func NewClient(cfg config.ChannelConfig) (*Client, error) {
	if cfg.AccessKey == "" || cfg.AccessSecret == "" {
		return nil, errors.New("channel access key and secret are required")
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:      cfg.BaseURL,
		accessKey:    cfg.AccessKey,
		accessSecret: cfg.AccessSecret,
		client:       &http.Client{Timeout: timeout},
	}, nil
}

// FetchChatPage retrieves one page of chat summaries for a lifecycle state.
// cursor is the opaque token from the previous page's Next field; pass ""
// for the first page.
func (c *Client) FetchChatPage(ctx context.Context, state, sortOrder string, limit int, cursor string) (*ChatPage, error) {
	query := url.Values{}
	if state != "" {
		query.Set("state", state)
	}
	query.Set("sortOrder", sortOrder)
	query.Set("limit", strconv.Itoa(limit))
	if cursor != "" {
		query.Set("since", cursor)
	}

	var page ChatPage
	if err := c.get(ctx, "/user-chats", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// FetchMessages retrieves the first page of a chat's message history in
// ascending timestamp order.
func (c *Client) FetchMessages(ctx context.Context, chatID string, limit int) (*MessagePage, error) {
	query := url.Values{}
	query.Set("sortOrder", "asc")
	query.Set("limit", strconv.Itoa(limit))

	var page MessagePage
	if err := c.get(ctx, "/user-chats/"+url.PathEscape(chatID)+"/messages", query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// FetchSessions retrieves a chat's session records untyped.
func (c *Client) FetchSessions(ctx context.Context, chatID string) (json.RawMessage, error) {
	return c.FetchRaw(ctx, "user-chats/"+url.PathEscape(chatID)+"/sessions", nil)
}

// FetchRaw proxies an arbitrary read-only endpoint of the platform API and
// returns the body undecoded. Used by the debug passthrough routes.
func (c *Client) FetchRaw(ctx context.Context, endpoint string, query url.Values) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/"+endpoint, query, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("channel API error: %s - %s", resp.Status, string(bodyBytes))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Access-Key", c.accessKey)
	req.Header.Set("X-Access-Secret", c.accessSecret)
}
