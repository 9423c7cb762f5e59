// SPDX-License-Identifier: MIT

// Package matrix - JSON encoding for Dense and PredMatrix.
//
// Wire format:
//   - Dense:      {"rows":r,"cols":c,"data":[...]} row-major; ±Inf as the strings "+Inf"/"-Inf".
//   - PredMatrix: {"rows":r,"cols":c,"data":[...]} row-major; NoPred as null.

package matrix

import (
	"encoding/json"
	"fmt"
	"math"
)

const (
	jsonPosInf = "+Inf"
	jsonNegInf = "-Inf"
)

type denseJSON struct {
	Rows int               `json:"rows"`
	Cols int               `json:"cols"`
	Data []json.RawMessage `json:"data"`
}

type predJSON struct {
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
	Data []*int `json:"data"`
}

// MarshalJSON implements json.Marshaler.
func (m *Dense) MarshalJSON() ([]byte, error) {
	out := denseJSON{Rows: m.r, Cols: m.c, Data: make([]json.RawMessage, len(m.data))}
	for i, v := range m.data {
		var (
			raw []byte
			err error
		)
		switch {
		case math.IsInf(v, 1):
			raw, err = json.Marshal(jsonPosInf)
		case math.IsInf(v, -1):
			raw, err = json.Marshal(jsonNegInf)
		default:
			raw, err = json.Marshal(v)
		}
		if err != nil {
			return nil, err
		}
		out.Data[i] = raw
	}

	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Dense) UnmarshalJSON(b []byte) error {
	var in denseJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	if in.Rows <= 0 || in.Cols <= 0 || len(in.Data) != in.Rows*in.Cols {
		return fmt.Errorf("Dense.UnmarshalJSON: %dx%d with %d values: %w", in.Rows, in.Cols, len(in.Data), ErrBadShape)
	}
	data := make([]float64, len(in.Data))
	for i, raw := range in.Data {
		if len(raw) > 0 && raw[0] == '"' {
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return err
			}
			switch s {
			case jsonPosInf:
				data[i] = math.Inf(1)
			case jsonNegInf:
				data[i] = math.Inf(-1)
			default:
				return fmt.Errorf("Dense.UnmarshalJSON: value %q: %w", s, ErrNaN)
			}
			continue
		}
		if err := json.Unmarshal(raw, &data[i]); err != nil {
			return err
		}
	}
	m.r, m.c, m.data = in.Rows, in.Cols, data

	return nil
}

// MarshalJSON implements json.Marshaler.
func (p *PredMatrix) MarshalJSON() ([]byte, error) {
	out := predJSON{Rows: p.r, Cols: p.c, Data: make([]*int, len(p.data))}
	for i, v := range p.data {
		if k, ok := v.Vertex(); ok {
			k := k
			out.Data[i] = &k
		}
	}

	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *PredMatrix) UnmarshalJSON(b []byte) error {
	var in predJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	if in.Rows <= 0 || in.Cols <= 0 || len(in.Data) != in.Rows*in.Cols {
		return fmt.Errorf("PredMatrix.UnmarshalJSON: %dx%d with %d values: %w", in.Rows, in.Cols, len(in.Data), ErrBadShape)
	}
	data := make([]Pred, len(in.Data))
	for i, k := range in.Data {
		if k != nil {
			data[i] = Via(*k)
		}
	}
	p.r, p.c, p.data = in.Rows, in.Cols, data

	return nil
}
