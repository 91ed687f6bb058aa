package sheets

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/vedicwisdom/funnel-backend/pkg/config"
	"github.com/vedicwisdom/funnel-backend/pkg/logger"
)

// Client wraps the Google Sheets API for the lead ledger spreadsheet.
type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
	sheetName     string
}

// Pinger exposes the health-check surface.
type Pinger interface {
	Ping(ctx context.Context) error
}

// New builds a Sheets client authorized via service-account credentials.
func New(ctx context.Context, cfg config.SheetsConfig, logg *logger.Logger) (*Client, error) {
	if cfg.SpreadsheetID == "" {
		return nil, errors.New("spreadsheet id is required")
	}

	opts := []option.ClientOption{option.WithScopes(gsheets.SpreadsheetsScope)}
	if cfg.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	}

	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "sheets client initialized")
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
	}, nil
}

// Ping verifies the spreadsheet is reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.svc == nil {
		return errors.New("sheets client not initialized")
	}
	_, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("spreadsheetId").Context(ctx).Do()
	return err
}

// WriteHeader overwrites the first row with the supplied header.
func (c *Client) WriteHeader(ctx context.Context, header []any) error {
	rng := fmt.Sprintf("%s!1:1", c.sheetName)
	vr := &gsheets.ValueRange{Values: [][]interface{}{header}}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}

// AppendRow appends one row after the last populated row.
func (c *Client) AppendRow(ctx context.Context, row []any) error {
	vr := &gsheets.ValueRange{Values: [][]interface{}{row}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, c.dataRange(), vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}

// ReadRows loads every populated row, header included.
func (c *Client) ReadRows(ctx context.Context) ([][]any, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.dataRange()).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	rows := make([][]any, 0, len(resp.Values))
	for _, row := range resp.Values {
		rows = append(rows, row)
	}
	return rows, nil
}

// UpdateRow overwrites a single row. rowNumber is 1-based as in the sheet UI.
func (c *Client) UpdateRow(ctx context.Context, rowNumber int, row []any) error {
	if rowNumber < 1 {
		return fmt.Errorf("invalid row number %d", rowNumber)
	}
	rng := fmt.Sprintf("%s!A%d", c.sheetName, rowNumber)
	vr := &gsheets.ValueRange{Values: [][]interface{}{row}}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	return err
}

func (c *Client) dataRange() string {
	return fmt.Sprintf("%s!A:K", c.sheetName)
}
