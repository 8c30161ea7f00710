// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package framestats summarizes per-frame clock deltas.
//
// A [Recorder] collects the delta a clock reported on each frame into
// an HDR histogram with microsecond resolution. Frames on which the
// clock did not advance (paused, or held by a hit pause) are counted
// separately so they do not drag the percentiles to zero. Negative
// deltas, which a clock reports when its upstream is rewound, are
// counted separately as well.
package framestats

import (
	"fmt"
	"math"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

const (
	lowestMicros      = 1
	highestMicros     = int64(time.Hour / time.Microsecond)
	significantDigits = 3
)

// Recorder accumulates frame deltas. The zero value is not usable;
// call [NewRecorder]. A Recorder is not safe for concurrent use.
type Recorder struct {
	histogram *hdrhistogram.Histogram
	paused    int64
	rewound   int64
}

// NewRecorder returns an empty recorder tracking deltas from one
// microsecond to one hour.
func NewRecorder() *Recorder {
	return &Recorder{
		histogram: hdrhistogram.New(lowestMicros, highestMicros, significantDigits),
	}
}

// Record adds one frame's delta in seconds. Deltas beyond an hour are
// recorded as an hour. Positive deltas under a microsecond are
// recorded as one microsecond.
func (r *Recorder) Record(delta float64) {
	switch {
	case math.IsNaN(delta):
		return
	case delta == 0:
		r.paused++
		return
	case delta < 0:
		r.rewound++
		return
	}

	micros := math.Round(delta * 1e6)
	value := int64(lowestMicros)
	if micros >= float64(highestMicros) {
		value = highestMicros
	} else if micros > lowestMicros {
		value = int64(micros)
	}
	// The value is clamped to the trackable range, so RecordValue
	// cannot fail.
	_ = r.histogram.RecordValue(value)
}

// Reset discards everything recorded.
func (r *Recorder) Reset() {
	r.histogram.Reset()
	r.paused = 0
	r.rewound = 0
}

// Summary describes the recorded deltas. Duration fields are zero
// when no advancing frame was recorded.
type Summary struct {
	// Frames counts every recorded frame, advancing or not.
	Frames int64
	// Paused counts frames with a zero delta.
	Paused int64
	// Rewound counts frames with a negative delta.
	Rewound int64

	Min  time.Duration
	Max  time.Duration
	Mean time.Duration
	P50  time.Duration
	P99  time.Duration
}

// Summary returns the current statistics. Percentile values are
// accurate to three significant digits.
func (r *Recorder) Summary() Summary {
	advancing := r.histogram.TotalCount()
	summary := Summary{
		Frames:  advancing + r.paused + r.rewound,
		Paused:  r.paused,
		Rewound: r.rewound,
	}
	if advancing == 0 {
		return summary
	}
	summary.Min = micros(r.histogram.Min())
	summary.Max = micros(r.histogram.Max())
	summary.Mean = time.Duration(r.histogram.Mean() * float64(time.Microsecond))
	summary.P50 = micros(r.histogram.ValueAtQuantile(50))
	summary.P99 = micros(r.histogram.ValueAtQuantile(99))
	return summary
}

func micros(value int64) time.Duration {
	return time.Duration(value) * time.Microsecond
}

// String formats the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("frames=%d paused=%d rewound=%d min=%s p50=%s p99=%s max=%s mean=%s",
		s.Frames, s.Paused, s.Rewound, s.Min, s.P50, s.P99, s.Max, s.Mean)
}
