package embedding

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ReadCSV parses one sample per row. A non-numeric first row is skipped as a
// header. Blank cells are errors.
func ReadCSV(r io.Reader, opts ...Option) (*Embedding, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	return FromRows(rows, opts...)
}

// ReadMatrixCSV parses a CSV with the same layout as ReadCSV into a matrix,
// for variance files that are attached with WithVariances.
func ReadMatrixCSV(r io.Reader) (*mat.Dense, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	return denseFromRows(rows)
}

func readRows(r io.Reader) ([][]float64, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = false

	var (
		rows [][]float64
		line int
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				return nil, fmt.Errorf("%w: %v", ErrShape, err)
			}
			return nil, fmt.Errorf("embedding: read csv: %w", err)
		}
		line++

		vals, perr := parseRecord(rec)
		if perr != nil {
			if line == 1 {
				continue // header
			}
			return nil, fmt.Errorf("embedding: csv line %d: %w", line, perr)
		}
		rows = append(rows, vals)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	return rows, nil
}

func parseRecord(rec []string) ([]float64, error) {
	out := make([]float64, len(rec))
	for j, cell := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, err
		}
		out[j] = v
	}

	return out, nil
}
