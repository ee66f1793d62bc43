// Package client provides a Go client for the koala API, used by the kc
// command-line tool.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	headerUsername = "x-koala-username"
	headerKey      = "x-koala-key"
)

var (
	ErrAlreadyRegistered = errors.New("username already registered")
	ErrBadCredentials    = errors.New("invalid username or API key")
	ErrNotFound          = errors.New("article not found")
)

// Client is a koala API client. Username and Key are attached as headers on
// every authenticated call.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Username   string
	Key        string
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Article mirrors the server's bookmark representation.
type Article struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Added    string `json:"added"`
	Read     bool   `json:"read"`
	Favorite bool   `json:"favorite"`
}

func (c *Client) doRequest(method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.Username != "" {
		req.Header.Set(headerUsername, c.Username)
		req.Header.Set(headerKey, c.Key)
	}
	return c.HTTPClient.Do(req)
}

// apiError surfaces the raw server response body alongside the status.
func apiError(action string, resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%s failed (%d): %s", action, resp.StatusCode, string(body))
}

// Register creates an account and returns the freshly minted API key.
func (c *Client) Register(username, password string) (string, error) {
	resp, err := c.doRequest(http.MethodPost, "/users", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict {
		return "", ErrAlreadyRegistered
	}
	if resp.StatusCode != http.StatusCreated {
		return "", apiError("register", resp)
	}

	var result struct {
		APIKey string `json:"apikey"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.APIKey, nil
}

// GenerateKey mints a new API key for an existing account.
func (c *Client) GenerateKey(username, password string) (string, error) {
	resp, err := c.doRequest(http.MethodPost, "/key", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return "", ErrBadCredentials
	}
	if resp.StatusCode != http.StatusCreated {
		return "", apiError("generate key", resp)
	}

	var result struct {
		APIKey string `json:"apikey"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.APIKey, nil
}

// ListArticles fetches every article owned by the authenticated user.
func (c *Client) ListArticles() ([]Article, error) {
	resp, err := c.doRequest(http.MethodGet, "/articles", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return nil, ErrBadCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError("list articles", resp)
	}

	var result struct {
		Articles []Article `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return result.Articles, nil
}

// GetArticle fetches a single article by id.
func (c *Client) GetArticle(id uint) (*Article, error) {
	resp, err := c.doRequest(http.MethodGet, fmt.Sprintf("/articles/%d", id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden:
		return nil, ErrBadCredentials
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, apiError("get article", resp)
	}

	var result struct {
		Article Article `json:"article"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result.Article, nil
}

// AddArticle stores a new bookmark and returns its id. Title may be empty.
func (c *Client) AddArticle(url, title string) (uint, error) {
	body := map[string]string{"url": url}
	if title != "" {
		body["title"] = title
	}

	resp, err := c.doRequest(http.MethodPost, "/articles", body)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return 0, ErrBadCredentials
	}
	if resp.StatusCode != http.StatusCreated {
		return 0, apiError("add article", resp)
	}

	var result struct {
		ID uint `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, err
	}
	return result.ID, nil
}

// RemoveArticle deletes a bookmark.
func (c *Client) RemoveArticle(id uint) error {
	resp, err := c.doRequest(http.MethodDelete, fmt.Sprintf("/articles/%d", id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusForbidden:
		return ErrBadCredentials
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return apiError("remove article", resp)
	}
}

// SetFlags applies a partial update to the read/favorite flags; nil fields
// are omitted from the payload and left unchanged server-side.
func (c *Client) SetFlags(id uint, read, favorite *bool) error {
	body := map[string]any{}
	if read != nil {
		body["read"] = *read
	}
	if favorite != nil {
		body["favorite"] = *favorite
	}

	resp, err := c.doRequest(http.MethodPut, fmt.Sprintf("/articles/%d", id), body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusForbidden:
		return ErrBadCredentials
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return apiError("update article", resp)
	}
}
