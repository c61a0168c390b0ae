package cleaner

import (
	"encoding/csv"
	"io"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"github.com/petalworks/florist-cli/internal/model"
)

// WriteRecords writes cleaned records as CSV with semantic column headers.
func WriteRecords(w io.Writer, records []model.Record) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	if err := enc.EncodeHeader(model.Record{}); err != nil {
		return eris.Wrap(err, "cleaner: encode header")
	}
	for _, rec := range records {
		if err := enc.Encode(rec); err != nil {
			return eris.Wrap(err, "cleaner: encode record")
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "cleaner: flush cleaned csv")
}
