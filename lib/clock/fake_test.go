// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sync"
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFakeClockNow(t *testing.T) {
	clock := Fake(epoch)
	if got := clock.Now(); !got.Equal(epoch) {
		t.Fatalf("Now() = %v, want %v", got, epoch)
	}
	clock.Advance(16 * time.Millisecond)
	want := epoch.Add(16 * time.Millisecond)
	if got := clock.Now(); !got.Equal(want) {
		t.Fatalf("Now() after Advance = %v, want %v", got, want)
	}
}

func TestFakeClockNewTicker(t *testing.T) {
	clock := Fake(epoch)
	ticker := clock.NewTicker(FrameInterval(60))
	defer ticker.Stop()

	select {
	case <-ticker.C:
		t.Fatal("ticker fired before first interval")
	default:
	}

	clock.Advance(FrameInterval(60))
	select {
	case tick := <-ticker.C:
		if want := epoch.Add(FrameInterval(60)); !tick.Equal(want) {
			t.Errorf("tick = %v, want %v", tick, want)
		}
	default:
		t.Fatal("ticker did not fire after first interval")
	}

	clock.Advance(FrameInterval(60))
	select {
	case <-ticker.C:
	default:
		t.Fatal("ticker did not fire after second interval")
	}
}

func TestFakeClockTickerPartialAdvance(t *testing.T) {
	clock := Fake(epoch)
	ticker := clock.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	clock.Advance(6 * time.Millisecond)
	select {
	case <-ticker.C:
		t.Fatal("ticker fired after partial advance")
	default:
	}

	clock.Advance(4 * time.Millisecond)
	select {
	case <-ticker.C:
	default:
		t.Fatal("ticker did not fire once the interval completed")
	}
}

func TestFakeClockTickerDropsTicks(t *testing.T) {
	clock := Fake(epoch)
	ticker := clock.NewTicker(1 * time.Second)
	defer ticker.Stop()

	// Five intervals elapse but the buffer holds one tick.
	clock.Advance(5 * time.Second)

	select {
	case <-ticker.C:
	default:
		t.Fatal("expected one buffered tick")
	}
	select {
	case <-ticker.C:
		t.Fatal("expected dropped ticks, got a second tick")
	default:
	}

	// The schedule kept running while ticks were dropped.
	clock.Advance(1 * time.Second)
	select {
	case tick := <-ticker.C:
		if want := epoch.Add(6 * time.Second); !tick.Equal(want) {
			t.Errorf("tick = %v, want %v", tick, want)
		}
	default:
		t.Fatal("ticker did not resume after dropped ticks")
	}
}

func TestFakeClockTickerStop(t *testing.T) {
	clock := Fake(epoch)
	ticker := clock.NewTicker(1 * time.Second)

	ticker.Stop()
	clock.Advance(5 * time.Second)

	select {
	case <-ticker.C:
		t.Fatal("ticker fired after Stop()")
	default:
	}
}

func TestFakeClockTickerPanicsOnNonPositive(t *testing.T) {
	clock := Fake(epoch)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("NewTicker(0) should panic")
		}
	}()
	clock.NewTicker(0)
}

func TestFakeClockSetDoesNotFire(t *testing.T) {
	clock := Fake(epoch)
	ticker := clock.NewTicker(1 * time.Second)
	defer ticker.Stop()

	later := epoch.Add(time.Hour)
	clock.Set(later)

	if got := clock.Now(); !got.Equal(later) {
		t.Fatalf("Now() after Set = %v, want %v", got, later)
	}
	select {
	case <-ticker.C:
		t.Fatal("Set should not fire tickers")
	default:
	}

	clock.Advance(1 * time.Second)
	select {
	case <-ticker.C:
	default:
		t.Fatal("ticker did not fire one interval after Set")
	}
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		framesPerSecond int
		want            time.Duration
	}{
		{60, 16666666 * time.Nanosecond},
		{30, 33333333 * time.Nanosecond},
		{1, time.Second},
	}
	for _, test := range tests {
		if got := FrameInterval(test.framesPerSecond); got != test.want {
			t.Errorf("FrameInterval(%d) = %v, want %v", test.framesPerSecond, got, test.want)
		}
	}
}

func TestFrameIntervalPanicsOnNonPositive(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("FrameInterval(0) should panic")
		}
	}()
	FrameInterval(0)
}

func TestFakeClockImplementsClock(t *testing.T) {
	var _ Clock = (*FakeClock)(nil)
}

func TestRealClockImplementsClock(t *testing.T) {
	var _ Clock = Real()
}

func TestFakeClockConcurrentAccess(t *testing.T) {
	clock := Fake(epoch)
	const goroutines = 10

	tickers := make(chan *Ticker, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			tickers <- clock.NewTicker(1 * time.Second)
			clock.Now()
		}()
	}
	wg.Wait()
	close(tickers)

	clock.Advance(1 * time.Second)
	for ticker := range tickers {
		select {
		case <-ticker.C:
		default:
			t.Error("ticker created concurrently did not fire")
		}
		ticker.Stop()
	}
}
