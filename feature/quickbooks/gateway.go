package quickbooks

import (
	"context"
	"strconv"
	"strings"

	"qb-sync/core/customer"

	"go.uber.org/zap"
)

// Gateway reads and writes QuickBooks customers over QBXML.
type Gateway struct {
	rp     RequestProcessor
	cfg    Config
	logger *zap.Logger
}

// NewGateway creates a gateway over the given request processor.
func NewGateway(rp RequestProcessor, cfg Config, logger *zap.Logger) *Gateway {
	return &Gateway{rp: rp, cfg: cfg, logger: logger}
}

// FetchCustomers returns all QuickBooks customers as raw rows for
// normalization. Customers outside the Fax-id convention (no Fax value) are
// skipped; they were never synced from a spreadsheet and cannot participate
// in reconciliation.
func (g *Gateway) FetchCustomers(ctx context.Context) ([]customer.RawRow, error) {
	raw, err := g.withSession(ctx, func(ticket string) (string, error) {
		return g.rp.ProcessRequest(ctx, ticket, buildCustomerQuery(g.cfg.QBXMLVersion))
	})
	if err != nil {
		return nil, err
	}

	resp, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	var rows []customer.RawRow
	skipped := 0
	for _, rs := range resp.MsgsRs.CustomerQueryRs {
		// Code 1 (no matching objects) is an empty result, not a failure.
		if err := statusError(rs.StatusCode, rs.StatusMessage, statusNoMatch); err != nil {
			return nil, err
		}
		for _, ret := range rs.CustomerRet {
			if strings.TrimSpace(ret.Fax) == "" {
				skipped++
				continue
			}
			rows = append(rows, customer.RawRow{ID: ret.Fax, Name: ret.displayName()})
		}
	}

	g.logger.Debug("Fetched QuickBooks customers",
		zap.Int("count", len(rows)),
		zap.Int("skipped_without_id", skipped),
	)
	return rows, nil
}

// AddCustomers creates the given records in QuickBooks in one batch request
// and returns the names confirmed created. Records that already exist are
// skipped; any other per-record failure is logged and skipped so one bad row
// does not abort the batch.
func (g *Gateway) AddCustomers(ctx context.Context, records []customer.Record) ([]string, error) {
	if len(records) == 0 {
		return nil, nil
	}

	raw, err := g.withSession(ctx, func(ticket string) (string, error) {
		return g.rp.ProcessRequest(ctx, ticket, buildCustomerAddBatch(g.cfg.QBXMLVersion, records))
	})
	if err != nil {
		return nil, err
	}

	resp, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	var created []string
	for _, rs := range resp.MsgsRs.CustomerAddRs {
		code, convErr := strconv.Atoi(rs.StatusCode)
		if convErr != nil {
			return created, statusError(rs.StatusCode, rs.StatusMessage)
		}
		switch code {
		case statusOK:
			for _, ret := range rs.CustomerRet {
				created = append(created, ret.displayName())
			}
		case statusAlreadyExists:
			g.logger.Debug("Customer already exists, skipping", zap.String("message", rs.StatusMessage))
		default:
			g.logger.Warn("Failed to create customer",
				zap.Int("status_code", code),
				zap.String("message", rs.StatusMessage),
			)
		}
	}

	return created, nil
}
