package quickbooks

import (
	"context"
	"fmt"
)

// RequestProcessor models the QBXML request-processor session surface.
// Implementations carry the actual transport (an HTTP bridge in production,
// a mock in tests).
type RequestProcessor interface {
	// OpenConnection registers the application with QuickBooks.
	OpenConnection(ctx context.Context, appName string) error
	// BeginSession opens a session against the given company file; an empty
	// path means the currently open company file. Returns a session ticket.
	BeginSession(ctx context.Context, companyFile string) (string, error)
	// ProcessRequest submits a QBXML document and returns the raw response.
	ProcessRequest(ctx context.Context, ticket, request string) (string, error)
	// EndSession releases the session ticket.
	EndSession(ctx context.Context, ticket string) error
	// CloseConnection unregisters the application.
	CloseConnection(ctx context.Context) error
}

// withSession runs fn inside a fully scoped connection + session, releasing
// both on every exit path. Teardown failures never mask the primary error.
func (g *Gateway) withSession(ctx context.Context, fn func(ticket string) (string, error)) (response string, err error) {
	if err := g.rp.OpenConnection(ctx, g.cfg.AppName); err != nil {
		return "", fmt.Errorf("failed to open QuickBooks connection: %w", err)
	}
	defer func() {
		if closeErr := g.rp.CloseConnection(ctx); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close QuickBooks connection: %w", closeErr)
		}
	}()

	ticket, err := g.rp.BeginSession(ctx, g.cfg.CompanyFile)
	if err != nil {
		return "", fmt.Errorf("failed to begin QuickBooks session: %w", err)
	}
	defer func() {
		if endErr := g.rp.EndSession(ctx, ticket); endErr != nil && err == nil {
			err = fmt.Errorf("failed to end QuickBooks session: %w", endErr)
		}
	}()

	return fn(ticket)
}
