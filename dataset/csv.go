package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadOptions controls how a delimited sensor file is read.
type LoadOptions struct {
	// Features names the columns to load, in order. When empty every
	// numeric named column before the label is used.
	Features []string
	// Comma is the field delimiter; zero means ','.
	Comma rune
}

// LoadFile opens path and reads it with LoadCSV.
func LoadFile(path string, opts LoadOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()
	ds, err := LoadCSV(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// LoadSplit loads the training and testing files with the same options.
// Both sets end up with identical feature columns.
func LoadSplit(trainPath, testPath string, opts LoadOptions) (*Split, error) {
	train, err := LoadFile(trainPath, opts)
	if err != nil {
		return nil, err
	}
	if len(opts.Features) == 0 {
		opts.Features = train.Names()
	}
	test, err := LoadFile(testPath, opts)
	if err != nil {
		return nil, err
	}
	return &Split{Train: train, Test: test}, nil
}

// LoadCSV reads one delimited file. The first row is a header; the last
// column of every data row is the binary label. When the header is shorter
// than the data rows (an unnamed leading row id), names are aligned to the
// right-most fields.
func LoadCSV(r io.Reader, opts LoadOptions) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("dataset: empty input: %w", ErrInvalidArgument)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset: header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var (
		layout   *columnLayout
		examples []Example
	)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if layout == nil {
			if layout, err = newColumnLayout(header, row, opts.Features); err != nil {
				return nil, fmt.Errorf("dataset: line %d: %w", line, err)
			}
		}
		ex, err := layout.parse(row)
		if err != nil {
			return nil, fmt.Errorf("dataset: line %d: %w", line, err)
		}
		examples = append(examples, ex)
	}
	if layout == nil {
		return nil, fmt.Errorf("dataset: no data rows: %w", ErrInvalidArgument)
	}
	return New(layout.names, examples)
}

type columnLayout struct {
	width int
	names []string
	cols  []int
}

func newColumnLayout(header, first []string, features []string) (*columnLayout, error) {
	width := len(first)
	offset := width - len(header)
	if offset < 0 || width < 2 {
		return nil, fmt.Errorf("row has %d fields, header %d: %w", width, len(header), ErrInvalidArgument)
	}
	labelCol := width - 1
	layout := &columnLayout{width: width}
	if len(features) == 0 {
		for i, name := range header {
			col := i + offset
			if col == labelCol {
				continue
			}
			if _, err := strconv.ParseFloat(strings.TrimSpace(first[col]), 64); err != nil {
				continue
			}
			layout.names = append(layout.names, name)
			layout.cols = append(layout.cols, col)
		}
		if len(layout.cols) == 0 {
			return nil, fmt.Errorf("no numeric feature columns: %w", ErrInvalidArgument)
		}
		return layout, nil
	}
	for _, name := range features {
		col := -1
		for i, h := range header {
			if h == name {
				col = i + offset
				break
			}
		}
		if col < 0 || col == labelCol {
			return nil, fmt.Errorf("unknown feature column %q: %w", name, ErrInvalidArgument)
		}
		layout.names = append(layout.names, name)
		layout.cols = append(layout.cols, col)
	}
	return layout, nil
}

func (l *columnLayout) parse(row []string) (Example, error) {
	if len(row) != l.width {
		return Example{}, fmt.Errorf("row has %d fields, want %d: %w", len(row), l.width, ErrInvalidArgument)
	}
	features := make([]float64, len(l.cols))
	for i, col := range l.cols {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
		if err != nil {
			return Example{}, fmt.Errorf("feature %q: %w", l.names[i], err)
		}
		features[i] = v
	}
	label, err := ParseLabel(row[l.width-1])
	if err != nil {
		return Example{}, err
	}
	return Example{Features: features, Label: label}, nil
}
