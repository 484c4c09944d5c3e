// SPDX-License-Identifier: MIT

package tps

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// PairsData is the persisted pair set: {"N": 3, "pairs": [...]}.
type PairsData struct {
	N     int         `json:"N"`
	Pairs []CoordPair `json:"pairs"`
}

// MapMetadata describes a saved map: its control pairs plus display fields.
type MapMetadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Center      Coordinate  `json:"center"`
	N           int         `json:"N"`
	Pairs       []CoordPair `json:"pairs"`
}

// pairsEnvelope matches both PairsData and MapMetadata documents.
type pairsEnvelope struct {
	Pairs *[]CoordPair `json:"pairs"`
}

// DecodePairs reads control pairs from JSON. Three layouts are accepted:
//   - a bare array of {"real":..,"map":..} objects,
//   - a PairsData object,
//   - a MapMetadata object.
//
// Errors:
//   - ErrUnknownFormat when the document is valid JSON of another shape.
//   - json decoding errors otherwise.
func DecodePairs(r io.Reader) ([]CoordPair, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("DecodePairs: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("DecodePairs: empty input: %w", ErrUnknownFormat)
	}

	switch raw[0] {
	case '[':
		var pairs []CoordPair
		if err = json.Unmarshal(raw, &pairs); err != nil {
			return nil, fmt.Errorf("DecodePairs: %w", err)
		}
		return pairs, nil
	case '{':
		var env pairsEnvelope
		if err = json.Unmarshal(raw, &env); err != nil {
			return nil, fmt.Errorf("DecodePairs: %w", err)
		}
		if env.Pairs == nil {
			return nil, fmt.Errorf("DecodePairs: object without \"pairs\": %w", ErrUnknownFormat)
		}
		return *env.Pairs, nil
	default:
		return nil, fmt.Errorf("DecodePairs: leading %q: %w", raw[0], ErrUnknownFormat)
	}
}

// EncodePairs writes pairs as an indented PairsData document.
func EncodePairs(w io.Writer, pairs []CoordPair) error {
	if pairs == nil {
		pairs = []CoordPair{}
	}

	return encodeIndented(w, PairsData{N: len(pairs), Pairs: pairs})
}

// EncodeMetadata writes md as an indented JSON document.
func EncodeMetadata(w io.Writer, md MapMetadata) error {
	return encodeIndented(w, md)
}

func encodeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	return nil
}

// Metadata describes the spline for persistence under the given name.
func (s *Spline) Metadata(name, description string) MapMetadata {
	return MapMetadata{
		Name:        name,
		Description: description,
		Center:      s.Center(),
		N:           s.m,
		Pairs:       s.Pairs(),
	}
}

// SwapRealXY returns a copy of pairs with X and Y exchanged in every real
// coordinate. It repairs pair files recorded as lat/lon instead of lon/lat.
func SwapRealXY(pairs []CoordPair) []CoordPair {
	out := make([]CoordPair, len(pairs))
	for i, p := range pairs {
		out[i] = CoordPair{Real: Coordinate{X: p.Real.Y, Y: p.Real.X}, Map: p.Map}
	}

	return out
}
