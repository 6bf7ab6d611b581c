// Package scraper starts the external data collection script as a detached process.
// The analytics engine never depends on it; it only reads what the script has stored.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/maxviazov/wrestling-analytics-service/internal/config"
	"github.com/rs/zerolog"
)

var (
	ErrDisabled       = errors.New("scraper disabled")
	ErrScriptNotFound = errors.New("scraper script not found")
)

type Status string

const (
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Run describes one launched scraper process.
type Run struct {
	ID        string     `json:"run_id"`
	PID       int        `json:"pid"`
	Trigger   string     `json:"trigger"`
	Status    Status     `json:"status"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	ExitCode  *int       `json:"exit_code,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// Recorder observes launches and exits. Implemented by the metrics package.
type Recorder interface {
	ScraperLaunched(trigger string)
	ScraperFinished(status string, took time.Duration)
}

// Launcher starts the script and remembers the most recent run.
type Launcher struct {
	cfg      config.ScraperConfig
	log      zerolog.Logger
	recorder Recorder

	mu      sync.Mutex
	last    *Run
	running int
	wg      sync.WaitGroup
}

func New(cfg config.ScraperConfig, logger zerolog.Logger, recorder Recorder) *Launcher {
	l := logger.With().Str("module", "scraper").Str("component", "launcher").Logger()
	return &Launcher{cfg: cfg, log: l, recorder: recorder}
}

// ScriptPath is where the launcher expects the script.
func (l *Launcher) ScriptPath() string {
	return filepath.Join(l.cfg.ScriptDir, l.cfg.Script)
}

func (l *Launcher) Enabled() bool { return l.cfg.Enabled }

// Launch starts the script and returns without waiting for it. The process is not tied to
// ctx: a finished HTTP request must not kill a scrape in progress.
func (l *Launcher) Launch(ctx context.Context, trigger string) (Run, error) {
	if !l.cfg.Enabled {
		return Run{}, ErrDisabled
	}
	if err := ctx.Err(); err != nil {
		return Run{}, err
	}
	script := l.ScriptPath()
	if info, err := os.Stat(script); err != nil || info.IsDir() {
		l.log.Warn().Str("path", script).Msg("scraper script not found")
		return Run{}, fmt.Errorf("%w: %s", ErrScriptNotFound, script)
	}

	cmd := exec.Command(l.cfg.Interpreter, l.cfg.Script)
	cmd.Dir = l.cfg.ScriptDir
	// stdio stays nil: the child reads and writes os.DevNull
	detach(cmd)

	if err := cmd.Start(); err != nil {
		l.log.Error().Err(err).Str("interpreter", l.cfg.Interpreter).Str("path", script).Msg("failed to start scraper")
		return Run{}, fmt.Errorf("start scraper: %w", err)
	}

	run := Run{
		ID:        uuid.NewString(),
		PID:       cmd.Process.Pid,
		Trigger:   trigger,
		Status:    StatusRunning,
		StartTime: time.Now().UTC(),
	}
	l.mu.Lock()
	l.last = &run
	l.running++
	l.mu.Unlock()
	if l.recorder != nil {
		l.recorder.ScraperLaunched(trigger)
	}
	l.log.Info().Str("run_id", run.ID).Int("pid", run.PID).Str("trigger", trigger).Msg("scraper started")

	l.wg.Add(1)
	go l.reap(cmd, run)
	return run, nil
}

// reap waits for the child so it never lingers as a zombie, then records the outcome.
func (l *Launcher) reap(cmd *exec.Cmd, run Run) {
	defer l.wg.Done()
	err := cmd.Wait()
	end := time.Now().UTC()
	code := cmd.ProcessState.ExitCode()

	run.EndTime = &end
	run.ExitCode = &code
	run.Status = StatusSucceeded
	if err != nil {
		run.Status = StatusFailed
		run.Error = err.Error()
	}

	l.mu.Lock()
	l.running--
	if l.last != nil && l.last.ID == run.ID {
		l.last = &run
	}
	l.mu.Unlock()

	if l.recorder != nil {
		l.recorder.ScraperFinished(string(run.Status), end.Sub(run.StartTime))
	}
	ev := l.log.Info()
	if err != nil {
		ev = l.log.Warn().Err(err)
	}
	ev.Str("run_id", run.ID).Int("pid", run.PID).Int("exit_code", code).
		Dur("took", end.Sub(run.StartTime)).Msg("scraper exited")
}

// Last returns the most recently launched run.
func (l *Launcher) Last() (Run, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.last == nil {
		return Run{}, false
	}
	return *l.last, true
}

// Running reports whether any launched process has not exited yet.
func (l *Launcher) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running > 0
}

// Wait blocks until every launched process has exited or ctx is done.
func (l *Launcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
