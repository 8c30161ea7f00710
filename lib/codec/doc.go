// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR encoding used to replicate clock
// state between peers.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2):
// smallest integer and float encoding, sorted map keys, no
// indefinite-length items. Same logical data always produces identical
// bytes, so two peers holding the same clock state can compare
// encodings or hashes of them directly.
//
// Clock state is written field by field through [FieldEncoder], which
// implements gametime.FieldWriter. The result is a CBOR sequence
// (RFC 8742): each field is its own top-level data item, in the order
// the clock writes them. [FieldDecoder] reads the sequence back.
//
//	encoder := codec.NewFieldEncoder(conn)
//	err := character.WriteState(encoder)
//
//	decoder := codec.NewFieldDecoder(conn)
//	err = replica.ReadState(decoder)
//
// For structured values (snapshots, reports) use the buffer or stream
// helpers:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// Structs carry `cbor` tags when they are only ever CBOR, and `json`
// tags when they are also printed as JSON; fxamacker/cbor reads `json`
// tags as a fallback.
package codec
