// Package dataset loads the dealers JSON file into memory.
package dataset

import (
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/dealer-insights/internal/model"
)

// Load reads the dealer dataset from path. A missing file is a fatal
// startup condition for callers; Load surfaces it as a wrapped error.
// The array is decoded element by element so a large dataset does not
// require a second full copy in memory.
func Load(path string) ([]model.Dealer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	dealers, err := decode(f)
	if err != nil {
		return nil, err
	}

	zap.L().Info("dataset loaded",
		zap.String("path", path),
		zap.Int("dealers", len(dealers)),
	)
	return dealers, nil
}

func decode(r io.Reader) ([]model.Dealer, error) {
	decoder := json.NewDecoder(r)

	tok, err := decoder.Token()
	if err != nil {
		return nil, eris.Wrap(err, "dataset: read opening token")
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '[' {
		return nil, eris.Errorf("dataset: expected '[', got %v", tok)
	}

	var dealers []model.Dealer
	for decoder.More() {
		var d model.Dealer
		if err := decoder.Decode(&d); err != nil {
			return nil, eris.Wrap(err, "dataset: decode dealer")
		}
		if err := normalize(&d, len(dealers)); err != nil {
			return nil, err
		}
		dealers = append(dealers, d)
	}

	// Consume closing bracket.
	if _, err := decoder.Token(); err != nil && err != io.EOF {
		return nil, eris.Wrap(err, "dataset: read closing token")
	}

	return dealers, nil
}

// normalize applies per-record defaults and rejects half-set coordinates.
func normalize(d *model.Dealer, index int) error {
	if d.Name == "" {
		return eris.Errorf("dataset: dealer %d has no name", index)
	}
	if d.Province == "" {
		d.Province = model.UnknownProvince
	}
	if (d.Latitude == nil) != (d.Longitude == nil) {
		return eris.Errorf("dataset: dealer %q has only one of latitude/longitude", d.Name)
	}
	return nil
}
