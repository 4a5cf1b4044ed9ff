// Package remote adaptador HTTP hacia el servidor de sincronización.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-stock/internal/application/ports"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/internal/domain/entity"
)

// Verificar en tiempo de compilación que Client implementa RemoteSyncClient.
var _ ports.RemoteSyncClient = (*Client)(nil)

const (
	loginPath = "/api/login"
	dataPath  = "/api/data"
	syncPath  = "/api/sync"

	maxBody = 32 << 20
)

// Client cliente JSON sobre net/http. Cualquier respuesta no 2xx es un error.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el adaptador. timeout 0 = sin límite (solo el del contexto).
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithHTTPClient reemplaza el cliente HTTP (tests).
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login POST /api/login → {token}.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	raw, err := c.do(ctx, http.MethodPost, loginPath, "", loginRequest{Email: email, Password: password})
	if err != nil {
		return "", err
	}
	var out loginResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("remote: deserializar login: %w", err)
	}
	if out.Token == "" {
		return "", fmt.Errorf("%w: login sin token", domain.ErrRemote)
	}
	return out.Token, nil
}

// FetchData GET /api/data con bearer. Cuerpo vacío = sin cambios.
func (c *Client) FetchData(ctx context.Context, token string) (*entity.RemoteData, error) {
	raw, err := c.do(ctx, http.MethodGet, dataPath, token, nil)
	if err != nil {
		return nil, err
	}
	var data entity.RemoteData
	if len(bytes.TrimSpace(raw)) == 0 {
		return &data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("remote: deserializar datos: %w", err)
	}
	return &data, nil
}

// Push POST /api/sync con el snapshot completo; la respuesta se descarta.
func (c *Client) Push(ctx context.Context, token string, snapshot entity.Snapshot) error {
	_, err := c.do(ctx, http.MethodPost, syncPath, token, snapshot)
	return err
}

func (c *Client) do(ctx context.Context, method, path, token string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("remote: serializar request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("remote: crear HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: timeout o cancelación: %v", domain.ErrRemote, ctx.Err())
		}
		return nil, fmt.Errorf("%w: %s %s: %v", domain.ErrRemote, method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("remote: leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s %s HTTP %d", domain.ErrRemote, method, path, resp.StatusCode)
	}
	return raw, nil
}
