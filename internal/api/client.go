package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tododeck/internal/config"
)

// DefaultBaseURL is the remote todo service used when neither the
// --api flag nor the config file names one.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// Client handles HTTP communication with the todo service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Todo represents a single todo item as returned by the service
type Todo struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// NewClient creates a new API client with config loading
func NewClient() (*Client, error) {
	return NewClientWithURL("")
}

// NewClientWithURL creates a new API client with an optional base URL override.
// Priority: provided URL > config [api].url > default service.
func NewClientWithURL(baseURL string) (*Client, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if baseURL == "" {
		baseURL = cfg.API.URL
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := time.Duration(cfg.API.Timeout) * time.Second

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// FetchTodos retrieves the full todo collection from the service
func (c *Client) FetchTodos() ([]Todo, error) {
	body, err := c.get(c.baseURL + "/todos")
	if err != nil {
		return nil, err
	}

	var todos []Todo
	if err := json.Unmarshal(body, &todos); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return todos, nil
}

// FetchTodo retrieves a single todo by its identifier
func (c *Client) FetchTodo(id int) (Todo, error) {
	body, err := c.get(fmt.Sprintf("%s/todos/%d", c.baseURL, id))
	if err != nil {
		return Todo{}, err
	}

	var todo Todo
	if err := json.Unmarshal(body, &todo); err != nil {
		return Todo{}, fmt.Errorf("failed to parse response: %w", err)
	}

	return todo, nil
}

// get issues a single GET request and returns the body for 2xx responses.
// No retry: a failed request is terminal for that fetch.
func (c *Client) get(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("todo not found")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API error: status %d", resp.StatusCode)
	}

	return body, nil
}
