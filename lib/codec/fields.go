// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/bureau-foundation/gametimer/lib/gametime"
)

// ErrMissingField is returned by FieldDecoder when the input ends
// before the requested field.
var ErrMissingField = errors.New("codec: missing field")

// FieldEncoder writes clock fields as a CBOR sequence (RFC 8742): one
// top-level data item per field, in call order, with no framing. It
// implements gametime.FieldWriter.
type FieldEncoder struct {
	encoder *Encoder
}

var _ gametime.FieldWriter = (*FieldEncoder)(nil)

// NewFieldEncoder returns a FieldEncoder writing to w.
func NewFieldEncoder(w io.Writer) *FieldEncoder {
	return &FieldEncoder{encoder: NewEncoder(w)}
}

// WriteFloat writes a float data item. Core Deterministic Encoding
// picks the shortest float width that round-trips the value exactly.
func (e *FieldEncoder) WriteFloat(value float64) error {
	return e.encoder.Encode(value)
}

// WriteBool writes a simple true/false data item.
func (e *FieldEncoder) WriteBool(value bool) error {
	return e.encoder.Encode(value)
}

// FieldDecoder reads the CBOR sequence written by FieldEncoder. It
// implements gametime.FieldReader. A field of the wrong CBOR type is
// an error; integers are not silently accepted as floats.
type FieldDecoder struct {
	decoder *Decoder
	fields  int
}

var _ gametime.FieldReader = (*FieldDecoder)(nil)

// NewFieldDecoder returns a FieldDecoder reading from r.
func NewFieldDecoder(r io.Reader) *FieldDecoder {
	return &FieldDecoder{decoder: NewDecoder(r)}
}

// ReadFloat reads the next field as a float.
func (d *FieldDecoder) ReadFloat() (float64, error) {
	var raw RawMessage
	if err := d.next(&raw); err != nil {
		return 0, err
	}
	// Major type 7 with additional info 25, 26 or 27 is a half,
	// single or double precision float.
	if len(raw) == 0 || raw[0]>>5 != 7 || raw[0]&0x1f < 25 || raw[0]&0x1f > 27 {
		return 0, fmt.Errorf("codec: field %d is not a float", d.fields)
	}
	var value float64
	if err := Unmarshal(raw, &value); err != nil {
		return 0, fmt.Errorf("codec: field %d: %w", d.fields, err)
	}
	return value, nil
}

// ReadBool reads the next field as a bool.
func (d *FieldDecoder) ReadBool() (bool, error) {
	var raw RawMessage
	if err := d.next(&raw); err != nil {
		return false, err
	}
	var value bool
	if err := Unmarshal(raw, &value); err != nil {
		return false, fmt.Errorf("codec: field %d: %w", d.fields, err)
	}
	return value, nil
}

// BytesRead returns the number of input bytes consumed by the fields
// read so far.
func (d *FieldDecoder) BytesRead() int {
	return d.decoder.NumBytesRead()
}

func (d *FieldDecoder) next(raw *RawMessage) error {
	d.fields++
	if err := d.decoder.Decode(raw); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("field %d: %w", d.fields, ErrMissingField)
		}
		return fmt.Errorf("codec: field %d: %w", d.fields, err)
	}
	return nil
}
