// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package gametime

import "fmt"

// FieldWriter is an ordered sink for persisted clock fields.
type FieldWriter interface {
	WriteFloat(value float64) error
	WriteBool(value bool) error
}

// FieldReader is an ordered source for persisted clock fields. Reads
// must happen in the order the fields were written.
type FieldReader interface {
	ReadFloat() (float64, error)
	ReadBool() (bool, error)
}

func fieldError(operation, field string, err error) error {
	return fmt.Errorf("%s %s: %w", operation, field, err)
}

// clockFields and countdownFields hold a complete read before it is
// committed, so a failed ReadState leaves the clock untouched.
type clockFields struct {
	currentTime float64
	paused      bool
}

type countdownFields struct {
	clock           clockFields
	countdownLength float64
	startTime       float64
}

func readClockFields(reader FieldReader) (clockFields, error) {
	currentTime, err := reader.ReadFloat()
	if err != nil {
		return clockFields{}, fieldError("reading", "current time", err)
	}
	paused, err := reader.ReadBool()
	if err != nil {
		return clockFields{}, fieldError("reading", "paused", err)
	}
	return clockFields{currentTime: currentTime, paused: paused}, nil
}

func readCountdownFields(reader FieldReader) (countdownFields, error) {
	clock, err := readClockFields(reader)
	if err != nil {
		return countdownFields{}, err
	}
	length, err := reader.ReadFloat()
	if err != nil {
		return countdownFields{}, fieldError("reading", "countdown length", err)
	}
	startTime, err := reader.ReadFloat()
	if err != nil {
		return countdownFields{}, fieldError("reading", "start time", err)
	}
	return countdownFields{clock: clock, countdownLength: length, startTime: startTime}, nil
}

func (c *Clock) apply(fields clockFields) {
	c.currentTime = fields.currentTime
	c.paused = fields.paused
}

func (t *CountdownTimer) apply(fields countdownFields) {
	t.Clock.apply(fields.clock)
	t.countdownLength = fields.countdownLength
	t.startTime = fields.startTime
}
