package client

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

	"github.com/dmitrijs2005/versioncheck/internal/client/models"
	"github.com/dmitrijs2005/versioncheck/internal/client/session"
	"github.com/dmitrijs2005/versioncheck/internal/common"
	"github.com/dmitrijs2005/versioncheck/internal/netx"
)

const (
	apiPrefix = "/api/v1"

	imageField = "vcImage"

	// maxErrorBody caps how much of a failed response ends up in RequestError.
	maxErrorBody = 4 << 10
)

// Sender sends authenticated requests; *session.Manager satisfies it.
type Sender interface {
	Do(ctx context.Context, req *session.Request) (*http.Response, error)
}

// APIClient calls the app and app-group endpoints.
type APIClient struct {
	baseURL string
	session Sender
}

func NewAPIClient(baseURL string, s Sender) *APIClient {
	return &APIClient{baseURL: strings.TrimRight(baseURL, "/") + apiPrefix, session: s}
}

func (c *APIClient) ListAppGroups(ctx context.Context) ([]models.AppGroup, error) {
	var groups []models.AppGroup
	err := c.callJSON(ctx, http.MethodGet, "/get-all-appgroups", nil, nil, &groups)
	return groups, err
}

func (c *APIClient) CreateAppGroup(ctx context.Context, form models.AppGroupForm) (models.AppGroup, error) {
	var group models.AppGroup
	err := c.callJSON(ctx, http.MethodPost, "/create-appgroup", nil, form, &group)
	return group, err
}

func (c *APIClient) UpdateAppGroup(ctx context.Context, id string, form models.AppGroupForm) (models.AppGroup, error) {
	var group models.AppGroup
	err := c.callJSON(ctx, http.MethodPut, "/update-appgroup", byAppID(id), form, &group)
	return group, err
}

func (c *APIClient) DeleteAppGroup(ctx context.Context, id string) error {
	return c.callJSON(ctx, http.MethodDelete, "/delete-appgroup", byAppID(id), nil, nil)
}

// UploadAppGroupImage attaches a thumbnail read from r to the group.
func (c *APIClient) UploadAppGroupImage(ctx context.Context, id, filename string, r io.Reader) error {
	return c.upload(ctx, "/app-group/"+url.PathEscape(id)+"/upload-image", filename, r)
}

func (c *APIClient) ListApps(ctx context.Context, groupID string) ([]models.App, error) {
	var apps []models.App
	err := c.callJSON(ctx, http.MethodGet, "/get-all-apps", url.Values{"appGroupID": {groupID}}, nil, &apps)
	return apps, err
}

func (c *APIClient) CreateApp(ctx context.Context, form models.AppForm) (models.App, error) {
	var app models.App
	err := c.callJSON(ctx, http.MethodPost, "/create-app", nil, form, &app)
	return app, err
}

func (c *APIClient) UpdateApp(ctx context.Context, id string, form models.AppForm) (models.App, error) {
	var app models.App
	err := c.callJSON(ctx, http.MethodPut, "/update-app", byAppID(id), form, &app)
	return app, err
}

func (c *APIClient) DeleteApp(ctx context.Context, id string) error {
	return c.callJSON(ctx, http.MethodDelete, "/delete-app", byAppID(id), nil, nil)
}

// UploadAppImage attaches an icon read from r to the app.
func (c *APIClient) UploadAppImage(ctx context.Context, id, filename string, r io.Reader) error {
	return c.upload(ctx, "/app/"+url.PathEscape(id)+"/upload-image", filename, r)
}

func byAppID(id string) url.Values {
	return url.Values{"APPID": {id}}
}

func (c *APIClient) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// callJSON sends in (if any) as JSON and decodes a 2xx body into out (if any).
func (c *APIClient) callJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		body = b
	}

	req := session.NewRequest(method, c.endpoint(path, query), body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return c.send(ctx, req, out)
}

func (c *APIClient) upload(ctx context.Context, path, filename string, r io.Reader) error {
	body, contentType, err := netx.MultipartFile(imageField, filename, r)
	if err != nil {
		return fmt.Errorf("encode %s upload: %w", path, err)
	}

	req := session.NewRequest(http.MethodPost, c.endpoint(path, nil), body)
	req.Header.Set("Content-Type", contentType)

	return c.send(ctx, req, nil)
}

func (c *APIClient) send(ctx context.Context, req *session.Request, out any) error {
	resp, err := c.session.Do(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &common.RequestError{
			Method:     req.Method,
			URL:        req.URL,
			StatusCode: resp.StatusCode,
			Body:       string(bytes.TrimSpace(msg)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s %s response: %w", req.Method, req.URL, err)
	}
	return nil
}
