package quickbooks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPProcessor implements RequestProcessor against a QBXML remote-connector
// bridge: a small service running next to QuickBooks Desktop that exposes the
// request processor over HTTP.
//
// Bridge API:
//
//	POST   /connection          {"app_name": ...}
//	POST   /session             {"company_file": ...} -> {"ticket": ...}
//	POST   /request             {"ticket": ..., "qbxml": ...} -> QBXML body
//	DELETE /session/{ticket}
//	DELETE /connection
type HTTPProcessor struct {
	endpoint string
	client   *http.Client
}

// NewHTTPProcessor creates a bridge client for the given endpoint.
func NewHTTPProcessor(cfg Config) *HTTPProcessor {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	return &HTTPProcessor{
		endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		client:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

func (p *HTTPProcessor) OpenConnection(ctx context.Context, appName string) error {
	_, err := p.post(ctx, "/connection", map[string]string{"app_name": appName})
	return err
}

func (p *HTTPProcessor) BeginSession(ctx context.Context, companyFile string) (string, error) {
	body, err := p.post(ctx, "/session", map[string]string{"company_file": companyFile})
	if err != nil {
		return "", err
	}

	var resp struct {
		Ticket string `json:"ticket"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("malformed session response from bridge: %w", err)
	}
	if resp.Ticket == "" {
		return "", fmt.Errorf("bridge returned an empty session ticket")
	}
	return resp.Ticket, nil
}

func (p *HTTPProcessor) ProcessRequest(ctx context.Context, ticket, request string) (string, error) {
	body, err := p.post(ctx, "/request", map[string]string{"ticket": ticket, "qbxml": request})
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (p *HTTPProcessor) EndSession(ctx context.Context, ticket string) error {
	return p.delete(ctx, "/session/"+ticket)
}

func (p *HTTPProcessor) CloseConnection(ctx context.Context) error {
	return p.delete(ctx, "/connection")
}

func (p *HTTPProcessor) post(ctx context.Context, path string, payload map[string]string) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint+path, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return p.do(req)
}

func (p *HTTPProcessor) delete(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, p.endpoint+path, nil)
	if err != nil {
		return err
	}

	_, err = p.do(req)
	return err
}

func (p *HTTPProcessor) do(req *http.Request) ([]byte, error) {
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("quickbooks bridge unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read bridge response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("quickbooks bridge returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return body, nil
}
