// Package cleaner turns the raw map-service export into semantically named,
// numerically normalized directory records.
package cleaner

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/width"

	"github.com/petalworks/florist-cli/internal/model"
)

// column maps one opaque raw export header to a semantic field name. The raw
// address column has an empty header.
type column struct {
	Raw  string
	Name string
}

// rawColumns in output order of the cleaned CSV.
var rawColumns = []column{
	{Raw: "hfpxzc href", Name: "url"},
	{Raw: "qBF1Pd", Name: "name"},
	{Raw: "評分", Name: "rating"},
	{Raw: "評分數", Name: "review_count"},
	{Raw: "", Name: "address"},
	{Raw: "UsdlK", Name: "phone"},
	{Raw: "FQ2IWe src", Name: "image_url"},
}

// Clean reads the raw export and returns cleaned records in input order.
func Clean(ctx context.Context, r io.Reader) ([]model.Record, error) {
	headerCh := make(chan []string, 1)
	rowCh, errCh := StreamCSV(ctx, r, CSVOptions{
		HasHeader: true,
		HeaderCh:  headerCh,
		TrimSpace: true,
	})

	var header []string
	select {
	case header = <-headerCh:
	case err := <-errCh:
		if err != nil {
			return nil, err
		}
		// errCh closes on EOF; the header may already be buffered.
		select {
		case header = <-headerCh:
		default:
			return nil, eris.New("cleaner: empty raw export")
		}
	case <-ctx.Done():
		return nil, eris.Wrap(ctx.Err(), "cleaner: context cancelled")
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[h] = i
	}

	var records []model.Record
	for row := range rowCh {
		records = append(records, cleanRow(row, index))
	}
	if err := <-errCh; err != nil {
		return nil, eris.Wrap(err, "cleaner: read raw export")
	}

	return records, nil
}

func cleanRow(row []string, index map[string]int) model.Record {
	field := func(raw string) string {
		i, ok := index[raw]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var rec model.Record
	for _, col := range rawColumns {
		value := field(col.Raw)
		switch col.Name {
		case "url":
			rec.URL = value
		case "name":
			rec.Name = value
		case "rating":
			rec.Rating = NormalizeRating(value)
		case "review_count":
			rec.ReviewCount = NormalizeReviewCount(value)
		case "address":
			rec.Address = value
		case "phone":
			rec.Phone = value
		case "image_url":
			rec.ImageURL = value
		}
	}
	return rec
}

// NormalizeRating parses a rating field and reformats it with %g. Scraped
// values may use full-width digits, so the string is narrowed first. Empty or
// non-numeric input normalizes to the empty string rather than an error.
func NormalizeRating(value string) string {
	value = strings.TrimSpace(width.Narrow.String(value))
	if value == "" {
		return ""
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return ""
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// NormalizeReviewCount parses a review-count field to a non-negative integer
// string. Empty or non-numeric input normalizes to the empty string.
func NormalizeReviewCount(value string) string {
	value = strings.TrimSpace(width.Narrow.String(value))
	if value == "" {
		return ""
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return ""
	}
	return strconv.Itoa(n)
}
