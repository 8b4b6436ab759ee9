package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"jobradar/internal/domain"
	"jobradar/internal/search"
	"jobradar/testdata/utils"
)

type fakeRunner struct {
	runs atomic.Int32
	err  error
}

func (f *fakeRunner) Run(ctx context.Context) (*domain.SearchStats, error) {
	f.runs.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &domain.SearchStats{}, nil
}

type fakeConfigStore struct {
	cfg *domain.SearchConfig
	err error
}

func (f *fakeConfigStore) Get(ctx context.Context) (*domain.SearchConfig, error) {
	return f.cfg, f.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func dueConfig() *domain.SearchConfig {
	return &domain.SearchConfig{
		ID:            domain.DefaultConfigID,
		Keywords:      "golang",
		IntervalHours: 6,
		IsActive:      true,
	}
}

func runUntilCancelled(t *testing.T, s *Scheduler, d time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	err := s.Start(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStart_RunsImmediatelyWhenDue(t *testing.T) {
	runner := &fakeRunner{}
	configs := &fakeConfigStore{cfg: dueConfig()}

	s := NewScheduler(runner, configs, time.Hour, testLogger())
	runUntilCancelled(t, s, 50*time.Millisecond)

	assert.Equal(t, int32(1), runner.runs.Load())
}

func TestStart_TicksRepeatedly(t *testing.T) {
	runner := &fakeRunner{}
	configs := &fakeConfigStore{cfg: dueConfig()}

	s := NewScheduler(runner, configs, 20*time.Millisecond, testLogger())
	runUntilCancelled(t, s, 110*time.Millisecond)

	assert.GreaterOrEqual(t, runner.runs.Load(), int32(3))
}

func TestStart_SkipsWhenNotDue(t *testing.T) {
	cfg := dueConfig()
	cfg.LastSearchAt = utils.Ptr(time.Now())

	runner := &fakeRunner{}
	s := NewScheduler(runner, &fakeConfigStore{cfg: cfg}, time.Hour, testLogger())
	runUntilCancelled(t, s, 50*time.Millisecond)

	assert.Equal(t, int32(0), runner.runs.Load())
}

func TestStart_SkipsWhenInactive(t *testing.T) {
	cfg := dueConfig()
	cfg.IsActive = false

	runner := &fakeRunner{}
	s := NewScheduler(runner, &fakeConfigStore{cfg: cfg}, time.Hour, testLogger())
	runUntilCancelled(t, s, 50*time.Millisecond)

	assert.Equal(t, int32(0), runner.runs.Load())
}

func TestStart_RunFailureIsNotFatal(t *testing.T) {
	runner := &fakeRunner{err: errors.New("sources down")}
	s := NewScheduler(runner, &fakeConfigStore{cfg: dueConfig()}, 20*time.Millisecond, testLogger())
	runUntilCancelled(t, s, 70*time.Millisecond)

	assert.GreaterOrEqual(t, runner.runs.Load(), int32(2))
}

func TestStart_NoKeywordsIsSilentSkip(t *testing.T) {
	runner := &fakeRunner{err: search.ErrNoKeywords}
	s := NewScheduler(runner, &fakeConfigStore{cfg: dueConfig()}, time.Hour, testLogger())
	runUntilCancelled(t, s, 50*time.Millisecond)

	assert.Equal(t, int32(1), runner.runs.Load())
}

func TestStart_ConfigLoadFailure(t *testing.T) {
	runner := &fakeRunner{}
	s := NewScheduler(runner, &fakeConfigStore{err: errors.New("db down")}, time.Hour, testLogger())
	runUntilCancelled(t, s, 50*time.Millisecond)

	assert.Equal(t, int32(0), runner.runs.Load())
}
