package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zhengyang6751/inventory-management-system/config"
)

// TokenSource supplies the bearer token for authenticated calls. An
// empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Client wraps the remote inventory service's REST interface. Every
// request carries a correlation ID and, when a session is active, the
// bearer token from the token source.
type Client struct {
	rest   *resty.Client
	logger *zap.Logger
}

func NewClient(cfg *config.APIConfig, tokens TokenSource, log *zap.Logger) *Client {
	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second).
		SetRetryCount(cfg.RetryCount).
		SetHeader("Accept", "application/json")

	rc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.NewString())
		if tok := tokens.Token(); tok != "" {
			req.SetAuthToken(tok)
		}
		return nil
	})

	rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug("api call",
			zap.String("method", resp.Request.Method),
			zap.String("url", resp.Request.URL),
			zap.Int("status", resp.StatusCode()),
			zap.Duration("duration", resp.Time()),
		)
		return nil
	})

	return &Client{rest: rc, logger: log}
}

func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, nil, out)
}

// GetQuery is Get with URL query parameters.
func (c *Client) GetQuery(ctx context.Context, path string, query map[string]string, out interface{}) error {
	req := c.rest.R().SetContext(ctx).SetQueryParams(query)
	if out != nil {
		req.SetResult(out)
	}
	return c.execute(req, http.MethodGet, path)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, nil, out)
}

// PostForm sends an application/x-www-form-urlencoded body. The login
// endpoint is the only caller.
func (c *Client) PostForm(ctx context.Context, path string, form map[string]string, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, form, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, nil, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, form map[string]string, out interface{}) error {
	req := c.rest.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if form != nil {
		req.SetFormData(form)
	}
	if out != nil {
		req.SetResult(out)
	}
	return c.execute(req, method, path)
}

func (c *Client) execute(req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Error("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return err
	}
	if resp.IsError() {
		return decodeError(resp)
	}
	return nil
}

func decodeError(resp *resty.Response) error {
	apiErr := &Error{Status: resp.StatusCode()}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Detail != "" {
		apiErr.Detail = body.Detail
	} else {
		apiErr.Detail = http.StatusText(resp.StatusCode())
	}
	return apiErr
}
