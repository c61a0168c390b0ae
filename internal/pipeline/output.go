package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"github.com/petalworks/florist-cli/internal/model"
)

// WriteTagged writes tagged records as CSV, header row first, input order
// preserved.
func WriteTagged(w io.Writer, tagged []model.TaggedRecord) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)
	if err := enc.EncodeHeader(model.TaggedRecord{}); err != nil {
		return eris.Wrap(err, "pipeline: encode header")
	}
	for _, tr := range tagged {
		if err := enc.Encode(tr); err != nil {
			return eris.Wrap(err, "pipeline: encode tagged record")
		}
	}
	cw.Flush()
	return eris.Wrap(cw.Error(), "pipeline: flush tagged csv")
}

// WriteCounts writes district counts as pretty-printed JSON with non-ASCII
// characters preserved literally.
func WriteCounts(w io.Writer, counts model.DistrictCounts) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return eris.Wrap(enc.Encode(counts), "pipeline: encode district counts")
}
