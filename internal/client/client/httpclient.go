package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/badgekeeper/internal/client/models"
	"github.com/dmitrijs2005/badgekeeper/internal/common"
	"github.com/dmitrijs2005/badgekeeper/internal/logging"
	"github.com/go-resty/resty/v2"
)

const (
	signupPath = "/api/signup"
	loginPath  = "/api/login"
	badgesPath = "/api/badges"
	badgePath  = "/api/badges/{id}"
)

type HTTPClient struct {
	rest   *resty.Client
	logger logging.Logger
}

// NewHTTPClient builds a client for the API rooted at baseURL, e.g.
// "http://localhost:8000".
func NewHTTPClient(baseURL string, logger logging.Logger) *HTTPClient {
	c := &HTTPClient{logger: logger}

	c.rest = resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", common.ContentTypeJSON).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		})).
		SetLogger(restyLogger{l: logger})

	c.rest.OnAfterResponse(c.logResponse)
	c.rest.OnError(c.logError)

	return c
}

func (c *HTTPClient) logResponse(_ *resty.Client, resp *resty.Response) error {
	c.logger.Debug(resp.Request.Context(), "api call completed",
		"method", resp.Request.Method,
		"url", resp.Request.URL,
		"status", resp.StatusCode(),
		"duration", resp.Time(),
	)
	return nil
}

func (c *HTTPClient) logError(req *resty.Request, err error) {
	c.logger.Warn(req.Context(), "api call failed", "method", req.Method, "url", req.URL, "error", err)
}

func (c *HTTPClient) Signup(ctx context.Context, creds models.Credentials) (string, error) {
	return c.postCredentials(ctx, signupPath, creds)
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	return c.postCredentials(ctx, loginPath, creds)
}

func (c *HTTPClient) postCredentials(ctx context.Context, path string, creds models.Credentials) (string, error) {
	resp, err := c.rest.R().SetContext(ctx).SetBody(creds).Post(path)
	if err := checkResponse(resp, err); err != nil {
		return "", err
	}
	return UnquoteCredential(resp.String()), nil
}

func (c *HTTPClient) CreateBadge(ctx context.Context, token string, details models.BadgeDetails) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader(common.AuthorizationHeaderName, token).
		SetBody(details).
		Post(badgesPath)
	return checkResponse(resp, err)
}

func (c *HTTPClient) GetBadge(ctx context.Context, id string) (*models.Badge, error) {
	resp, err := c.rest.R().SetContext(ctx).SetPathParam("id", id).Get(badgePath)
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}

	var b models.Badge
	if err := json.Unmarshal(resp.Body(), &b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}
	return &b, nil
}

func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return &StatusError{Code: resp.StatusCode()}
	}
	return nil
}

// UnquoteCredential strips the JSON string quoting the server puts around
// an issued credential.
func UnquoteCredential(body string) string {
	return strings.ReplaceAll(strings.TrimSpace(body), `"`, "")
}

// restyLogger routes resty's own diagnostics into the structured logger.
type restyLogger struct {
	l logging.Logger
}

func (r restyLogger) Errorf(format string, v ...any) {
	r.l.Error(context.Background(), "resty: "+fmt.Sprintf(format, v...))
}

func (r restyLogger) Warnf(format string, v ...any) {
	r.l.Warn(context.Background(), "resty: "+fmt.Sprintf(format, v...))
}

func (r restyLogger) Debugf(format string, v ...any) {
	r.l.Debug(context.Background(), "resty: "+fmt.Sprintf(format, v...))
}
