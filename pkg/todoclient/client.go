// Package todoclient fetches the task list from a running todoweb api.
package todoclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/segmentio/encoding/json"

	"github.com/THPTUHA/todoweb/pkg/todo"
)

// TodosPath is the api route serving the task list.
const TodosPath = "/api/todos"

var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrDecode           = errors.New("malformed task list")
)

type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a client for the api rooted at baseURL. A nil httpClient
// means http.DefaultClient; no timeout is added on top of the caller's ctx.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) URL() string {
	return c.baseURL + TodosPath
}

// List issues one GET and decodes the whole body.
func (c *Client) List(ctx context.Context) ([]todo.Task, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", c.URL(), err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.URL(), err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("%w %d from %s", ErrUnexpectedStatus, res.StatusCode, c.URL())
	}

	var tasks []todo.Task
	if err := json.Unmarshal(body, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return tasks, nil
}
