// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package replication encodes whole clock states for transfer between
// peers and fingerprints them for desync detection.
//
// A state is any value that streams its persisted fields through the
// gametime field interfaces: [gametime.Clock], [gametime.CountdownTimer]
// and [gametime.HitPauseClock] all qualify. The encoding is the CBOR
// field sequence from lib/codec. Peers running the same simulation in
// lockstep exchange [Checksum] values each frame; a mismatch means
// their clocks have diverged.
package replication

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/gametimer/lib/codec"
	"github.com/bureau-foundation/gametimer/lib/gametime"
)

// State is a clock whose persisted fields can be written and read.
type State interface {
	WriteState(gametime.FieldWriter) error
	ReadState(gametime.FieldReader) error
}

var (
	_ State = (*gametime.Clock)(nil)
	_ State = (*gametime.CountdownTimer)(nil)
	_ State = (*gametime.HitPauseClock)(nil)
)

// Hash is a BLAKE3-256 digest of an encoded state.
type Hash [32]byte

// String returns the lowercase hex encoding of the hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Short returns the first 12 hex characters, for log lines.
func (h Hash) Short() string {
	return h.String()[:12]
}

// Encode returns the CBOR field sequence for state.
func Encode(state State) ([]byte, error) {
	var buffer bytes.Buffer
	if err := state.WriteState(codec.NewFieldEncoder(&buffer)); err != nil {
		return nil, fmt.Errorf("encoding state: %w", err)
	}
	return buffer.Bytes(), nil
}

// Decode reads data into state. Data left over after the last field is
// an error: it means the sender and receiver disagree about the state's
// type. The fields are read into a copy of state, which replaces state
// only once the whole input has been accepted, so a rejected input
// leaves state unchanged. Fields that are not replicated (speed, the
// last delta) keep their current values.
func Decode[S any, P interface {
	*S
	State
}](data []byte, state P) error {
	scratch := *state
	decoder := codec.NewFieldDecoder(bytes.NewReader(data))
	if err := P(&scratch).ReadState(decoder); err != nil {
		return fmt.Errorf("decoding state: %w", err)
	}
	if consumed := decoder.BytesRead(); consumed != len(data) {
		return fmt.Errorf("decoding state: %d trailing bytes after %d", len(data)-consumed, consumed)
	}
	*state = scratch
	return nil
}

// Checksum returns the BLAKE3 hash of the encoded state. Equal states
// produce equal checksums because the encoding is deterministic.
func Checksum(state State) (Hash, error) {
	data, err := Encode(state)
	if err != nil {
		return Hash{}, err
	}
	return blake3.Sum256(data), nil
}
