package app

import (
	"context"
	"sync"
	"time"

	"husk-grader/internal/domain/entity"
	"husk-grader/internal/domain/port"
)

// fakeClock двигает время только в Sleep
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
	return nil
}

// scriptedLink отдаёт строку, когда наступает её момент относительно начала
type scriptedLink struct {
	clock  *fakeClock
	start  time.Time
	lines  []scriptedLine
	polls  int
	errors []error
}

type scriptedLine struct {
	after time.Duration
	text  string
}

func (l *scriptedLink) PollLine() (string, bool, error) {
	l.polls++
	if len(l.errors) > 0 {
		err := l.errors[0]
		l.errors = l.errors[1:]
		return "", false, err
	}
	if len(l.lines) == 0 {
		return "", false, nil
	}
	if l.clock.Now().Sub(l.start) < l.lines[0].after {
		return "", false, nil
	}
	line := l.lines[0].text
	l.lines = l.lines[1:]
	return line, true, nil
}

type fakeRelay struct {
	calls []bool
	err   error
}

func (r *fakeRelay) SetPower(on bool) error {
	r.calls = append(r.calls, on)
	return r.err
}

func (r *fakeRelay) last() bool {
	return r.calls[len(r.calls)-1]
}

type fakeSensor struct {
	readings []float64
	errs     []error
}

func (s *fakeSensor) MeasureDistance(ctx context.Context) (float64, error) {
	var d float64
	var err error
	if len(s.readings) > 0 {
		d, s.readings = s.readings[0], s.readings[1:]
	}
	if len(s.errs) > 0 {
		err, s.errs = s.errs[0], s.errs[1:]
	}
	return d, err
}

type fakeCamera struct {
	frame entity.Raster
	err   error
	shots int
}

func (c *fakeCamera) CaptureFrame(ctx context.Context) (entity.Raster, error) {
	c.shots++
	return c.frame, c.err
}

func (c *fakeCamera) Close() error { return nil }

type fakeLight struct {
	calls []bool
}

func (l *fakeLight) SetLight(on bool) error {
	l.calls = append(l.calls, on)
	return nil
}

var (
	_ port.Clock          = (*fakeClock)(nil)
	_ port.SerialLink     = (*scriptedLink)(nil)
	_ port.Relay          = (*fakeRelay)(nil)
	_ port.DistanceSensor = (*fakeSensor)(nil)
	_ port.Camera         = (*fakeCamera)(nil)
	_ port.Light          = (*fakeLight)(nil)
)
