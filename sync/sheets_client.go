// ABOUTME: Google Sheets API client for the contact sheet
// ABOUTME: Fetches a value range and flattens cells to strings
package sync

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type SheetsSource struct {
	svc       *sheets.Service
	readRange string
}

// NewSheetsSource creates a Google Sheets API client reading readRange
// (for example "Sheet1!A1:Z500").
func NewSheetsSource(ctx context.Context, readRange string, opts ...option.ClientOption) (*SheetsSource, error) {
	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}
	return &SheetsSource{svc: service, readRange: readRange}, nil
}

// Rows returns the formatted cell values of the configured range, header first.
func (s *SheetsSource) Rows(ctx context.Context, sheetID string) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(sheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, apiError("spreadsheet", sheetID, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, values := range resp.Values {
		row := make([]string, len(values))
		for i, v := range values {
			if v != nil {
				row[i] = fmt.Sprint(v)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
