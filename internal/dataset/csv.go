package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FromCSV reads a set from a CSV file where each record carries the
// input features followed by the label values. Records must have
// exactly inputWidth+labelWidth fields; when hasHeader is true the
// first record is skipped.
func FromCSV(path string, inputWidth, labelWidth int, hasHeader bool) (*Set, error) {
	if inputWidth <= 0 || labelWidth <= 0 {
		return nil, fmt.Errorf("%w: widths must be positive, got %d and %d", ErrMismatch, inputWidth, labelWidth)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = inputWidth + labelWidth
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	if hasHeader && len(records) > 0 {
		records = records[1:]
	}

	inputs := make([][]float64, len(records))
	labels := make([][]float64, len(records))
	for i, record := range records {
		row := make([]float64, len(record))
		for j, cell := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("parse dataset row %d col %d: %w", i+1, j+1, err)
			}
			row[j] = v
		}
		inputs[i] = row[:inputWidth]
		labels[i] = row[inputWidth:]
	}
	return FromSlices(inputs, labels)
}
