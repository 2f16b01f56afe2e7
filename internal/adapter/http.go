package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-whitelist-keeper/internal/config"
	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/internal/utils"
	"github.com/MKhiriev/go-whitelist-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/token. The token is taken from the Authorization response
// header when present, otherwise from the body, and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, req models.TokenRequest) (models.TokenResponse, error) {
	var tr models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&tr).
		Post("/api/auth/token")
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	if header := resp.Header().Get("Authorization"); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return models.TokenResponse{}, fmt.Errorf("login parse bearer token: %w", err)
		}
		tr.Token = token
	}
	if tr.Token == "" {
		return models.TokenResponse{}, fmt.Errorf("login: empty token in response")
	}

	h.SetToken(tr.Token)
	return tr, nil
}

// List implements [ServerAdapter] via GET /api/whitelist.
func (h *httpServerAdapter) List(ctx context.Context) ([]string, error) {
	var nr models.NamesResponse
	resp, err := h.authedRequest(ctx).
		SetResult(&nr).
		Get("/api/whitelist")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return nr.Names, nil
}

// Add implements [ServerAdapter] via POST /api/whitelist.
func (h *httpServerAdapter) Add(ctx context.Context, name string) (models.NameChange, error) {
	var change models.NameChange
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NameRequest{Name: name}).
		SetResult(&change).
		Post("/api/whitelist")
	if err != nil {
		return models.NameChange{}, fmt.Errorf("add request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NameChange{}, err
	}
	return change, nil
}

// Remove implements [ServerAdapter] via DELETE /api/whitelist/{name}.
func (h *httpServerAdapter) Remove(ctx context.Context, name string) (models.NameChange, error) {
	var change models.NameChange
	resp, err := h.authedRequest(ctx).
		SetPathParam("name", name).
		SetResult(&change).
		Delete("/api/whitelist/{name}")
	if err != nil {
		return models.NameChange{}, fmt.Errorf("remove request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NameChange{}, err
	}
	return change, nil
}

// RemoteList implements [ServerAdapter] via GET /api/whitelist/remote.
func (h *httpServerAdapter) RemoteList(ctx context.Context) (models.RemoteListResponse, error) {
	var rl models.RemoteListResponse
	resp, err := h.authedRequest(ctx).
		SetResult(&rl).
		Get("/api/whitelist/remote")
	if err != nil {
		return models.RemoteListResponse{}, fmt.Errorf("remote list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteListResponse{}, err
	}
	return rl, nil
}

// Diff implements [ServerAdapter] via GET /api/sync/diff.
func (h *httpServerAdapter) Diff(ctx context.Context, removeExtras *bool) (models.ReconciliationPlan, error) {
	var plan models.ReconciliationPlan
	resp, err := withRemoveExtras(h.authedRequest(ctx), removeExtras).
		SetResult(&plan).
		Get("/api/sync/diff")
	if err != nil {
		return models.ReconciliationPlan{}, fmt.Errorf("diff request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ReconciliationPlan{}, err
	}
	return plan, nil
}

// Sync implements [ServerAdapter] via POST /api/sync.
func (h *httpServerAdapter) Sync(ctx context.Context, removeExtras *bool) (models.ReconciliationResult, error) {
	var result models.ReconciliationResult
	resp, err := withRemoveExtras(h.authedRequest(ctx), removeExtras).
		SetResult(&result).
		Post("/api/sync")
	if err != nil {
		return models.ReconciliationResult{}, fmt.Errorf("sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ReconciliationResult{}, err
	}
	return result, nil
}

// Import implements [ServerAdapter]. The file content is sent as the raw
// request body to POST /api/whitelist/import.
func (h *httpServerAdapter) Import(ctx context.Context, fileName string, data []byte, applyRemote bool) (models.ImportResult, error) {
	var result models.ImportResult
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetQueryParam("apply_remote", strconv.FormatBool(applyRemote)).
		SetQueryParam("filename", fileName).
		SetBody(data).
		SetResult(&result).
		Post("/api/whitelist/import")
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("import request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ImportResult{}, err
	}
	return result, nil
}

// Export implements [ServerAdapter] via GET /api/whitelist/export.
func (h *httpServerAdapter) Export(ctx context.Context, format models.ExportFormat) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("format", string(format)).
		Get("/api/whitelist/export")
	if err != nil {
		return nil, fmt.Errorf("export request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

// Status implements [ServerAdapter] via GET /api/status.
func (h *httpServerAdapter) Status(ctx context.Context) (models.Status, error) {
	var status models.Status
	resp, err := h.authedRequest(ctx).
		SetResult(&status).
		Get("/api/status")
	if err != nil {
		return models.Status{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Status{}, err
	}
	return status, nil
}

// Audit implements [ServerAdapter] via GET /api/audit. A non-positive limit
// leaves the page size to the server.
func (h *httpServerAdapter) Audit(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	var ar models.AuditResponse
	req := h.authedRequest(ctx).SetResult(&ar)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/api/audit")
	if err != nil {
		return nil, fmt.Errorf("audit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return ar.Entries, nil
}

// Version implements [ServerAdapter] via GET /api/version. No token is
// required.
func (h *httpServerAdapter) Version(ctx context.Context) (models.BuildInfoResponse, error) {
	var info models.BuildInfoResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version")
	if err != nil {
		return models.BuildInfoResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BuildInfoResponse{}, err
	}
	return info, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func withRemoveExtras(req *resty.Request, removeExtras *bool) *resty.Request {
	if removeExtras != nil {
		req.SetQueryParam("remove_extras", strconv.FormatBool(*removeExtras))
	}
	return req
}
