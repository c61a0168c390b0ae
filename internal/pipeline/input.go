package pipeline

import (
	"encoding/csv"
	"io"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"github.com/petalworks/florist-cli/internal/model"
)

// ReadRecords decodes cleaned directory records from CSV. The header row is
// required and maps columns by semantic name, so column order is free to vary.
func ReadRecords(r io.Reader) ([]model.Record, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: read csv header")
	}

	var records []model.Record
	for {
		var rec model.Record
		if err := dec.Decode(&rec); err == io.EOF {
			break
		} else if err != nil {
			return nil, eris.Wrap(err, "pipeline: decode record")
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadTagged decodes previously tagged records from CSV.
func ReadTagged(r io.Reader) ([]model.TaggedRecord, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: read tagged csv header")
	}

	var tagged []model.TaggedRecord
	for {
		var tr model.TaggedRecord
		if err := dec.Decode(&tr); err == io.EOF {
			break
		} else if err != nil {
			return nil, eris.Wrap(err, "pipeline: decode tagged record")
		}
		tagged = append(tagged, tr)
	}
	return tagged, nil
}
