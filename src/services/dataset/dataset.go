// Package dataset loads the labelled skills CSV used to train the classifier.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	ErrEmptyDataset  = errors.New("dataset has no usable rows")
	ErrMissingColumn = errors.New("dataset label column missing")
	ErrColumnCount   = errors.New("dataset feature column count mismatch")
)

// missingMarkers are the cell values treated as missing, besides blank cells.
var missingMarkers = map[string]struct{}{
	"na": {}, "n/a": {}, "nan": {}, "null": {}, "none": {}, "#n/a": {},
}

// Dataset is a feature matrix with one integer label per row.
type Dataset struct {
	Columns  []string
	Features [][]float64
	Labels   []int
	Dropped  int
}

// Len is the number of usable rows.
func (d *Dataset) Len() int {
	return len(d.Labels)
}

// Load reads path. width is the required number of feature columns;
// pass 0 to accept any.
func Load(path, labelColumn string, width int) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	ds, err := Parse(f, labelColumn, width)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return ds, nil
}

// Parse reads a header row followed by data rows. Rows with any missing
// cell are dropped; a non-numeric cell in a complete row is an error.
func Parse(r io.Reader, labelColumn string, width int) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDataset
		}
		return nil, fmt.Errorf("header: %w", err)
	}
	for i := range header {
		header[i] = cleanCell(header[i])
	}

	labelIdx := -1
	for i, name := range header {
		if strings.EqualFold(name, labelColumn) {
			labelIdx = i
			break
		}
	}
	if labelIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, labelColumn)
	}

	featureIdx := make([]int, 0, len(header)-1)
	columns := make([]string, 0, len(header)-1)
	for i, name := range header {
		if i == labelIdx {
			continue
		}
		featureIdx = append(featureIdx, i)
		columns = append(columns, name)
	}
	if width > 0 && len(featureIdx) != width {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrColumnCount, len(featureIdx), width)
	}

	ds := &Dataset{Columns: columns}
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if isBlankRow(row) {
			continue
		}
		if len(row) < len(header) || hasMissing(row[:len(header)]) {
			ds.Dropped++
			continue
		}

		label, err := parseLabel(row[labelIdx])
		if err != nil {
			return nil, fmt.Errorf("line %d column %q: %w", line, header[labelIdx], err)
		}
		features := make([]float64, len(featureIdx))
		for j, idx := range featureIdx {
			v, err := strconv.ParseFloat(cleanCell(row[idx]), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %q: %w", line, header[idx], err)
			}
			features[j] = v
		}
		ds.Features = append(ds.Features, features)
		ds.Labels = append(ds.Labels, label)
	}

	if ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	return ds, nil
}

// Split shuffles row indexes with seed and puts ceil(testSize*n) rows in
// the test part. The train part always keeps at least one row.
func (d *Dataset) Split(testSize float64, seed int64) (train, test *Dataset) {
	n := d.Len()
	nTest := int(math.Ceil(testSize * float64(n)))
	if nTest >= n {
		nTest = n - 1
	}
	if nTest < 0 {
		nTest = 0
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	train = d.subset(perm[nTest:])
	test = d.subset(perm[:nTest])
	return train, test
}

func (d *Dataset) subset(idx []int) *Dataset {
	out := &Dataset{
		Columns:  d.Columns,
		Features: make([][]float64, len(idx)),
		Labels:   make([]int, len(idx)),
	}
	for i, j := range idx {
		out.Features[i] = d.Features[j]
		out.Labels[i] = d.Labels[j]
	}
	return out
}

func parseLabel(cell string) (int, error) {
	cell = cleanCell(cell)
	if v, err := strconv.Atoi(cell); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("label %q is not an integer", cell)
	}
	return int(f), nil
}

func hasMissing(row []string) bool {
	for _, cell := range row {
		c := cleanCell(cell)
		if c == "" {
			return true
		}
		if _, ok := missingMarkers[strings.ToLower(c)]; ok {
			return true
		}
	}
	return false
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cleanCell(cell) != "" {
			return false
		}
	}
	return true
}

func cleanCell(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.TrimSpace(s)
}
