// Package sheets inspects the target spreadsheet through the Google Sheets API
// before a test run.
package sheets

import (
	"context"
	"fmt"
	"slices"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type Checker struct {
	spreadsheets *sheets.SpreadsheetsService
	spreadsheet  string
}

func NewChecker(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*Checker, error) {
	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing sheets client: %w", err)
	}

	return &Checker{spreadsheets: service.Spreadsheets, spreadsheet: spreadsheetID}, nil
}

// SheetTitles lists the titles of all sheets of the spreadsheet.
func (c *Checker) SheetTitles(ctx context.Context) ([]string, error) {
	spreadsheet, err := c.spreadsheets.Get(c.spreadsheet).
		Fields("sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("fetching spreadsheet `%s`: %w", c.spreadsheet, err)
	}

	titles := make([]string, 0, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil {
			titles = append(titles, sheet.Properties.Title)
		}
	}
	return titles, nil
}

func (c *Checker) SheetExists(ctx context.Context, title string) (bool, []string, error) {
	titles, err := c.SheetTitles(ctx)
	if err != nil {
		return false, nil, err
	}
	return slices.Contains(titles, title), titles, nil
}
