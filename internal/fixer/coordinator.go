package fixer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/phpfix/internal/config"
	"github.com/dshills/phpfix/internal/editor"
	"github.com/dshills/phpfix/internal/notify"
	"github.com/dshills/phpfix/internal/process"
)

// Sentinel errors for the fix workflow.
var (
	// ErrFixInFlight is returned when a fix is already running.
	// Callers treat it as a silent no-op, not a failure.
	ErrFixInFlight = errors.New("fix already in progress")

	// ErrEmptyOutput is returned when the binary exits 0 but the
	// rewritten file is empty.
	ErrEmptyOutput = errors.New("php-cs-fixer produced empty output")

	// ErrTimeout is returned when the binary exceeds the configured
	// fix timeout and is killed.
	ErrTimeout = errors.New("php-cs-fixer timed out")
)

// successMessage is shown after a completed fix.
const successMessage = "PHP CS Fixer: file fixed."

// processName identifies fixer children in process tracking and logs.
const processName = "php-cs-fixer"

// ConfigSource supplies the current configuration snapshot.
type ConfigSource interface {
	Current() *config.Configuration
}

// Logger is the logging interface the coordinator needs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Error(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Coordinator runs fix operations against the external php-cs-fixer
// binary. One coordinator exists per editor session; pass it to the
// save-hook and format-provider registrations.
type Coordinator struct {
	source   ConfigSource
	notifier *notify.Dispatcher
	sup      *process.Supervisor
	temp     *TempManager
	args     *ArgBuilder
	log      Logger

	// workspaceRoot returns the active workspace root, re-queried per
	// invocation because it can change between calls.
	workspaceRoot func() string

	// busy is the single-slot gate serializing fix operations.
	busy atomic.Bool
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithNotifier sets the notification dispatcher.
func WithNotifier(d *notify.Dispatcher) CoordinatorOption {
	return func(c *Coordinator) {
		if d != nil {
			c.notifier = d
		}
	}
}

// WithSupervisor sets the process supervisor.
func WithSupervisor(s *process.Supervisor) CoordinatorOption {
	return func(c *Coordinator) {
		if s != nil {
			c.sup = s
		}
	}
}

// WithTempManager sets the temp-file manager.
func WithTempManager(m *TempManager) CoordinatorOption {
	return func(c *Coordinator) {
		if m != nil {
			c.temp = m
		}
	}
}

// WithArgBuilder sets the argument builder.
func WithArgBuilder(b *ArgBuilder) CoordinatorOption {
	return func(c *Coordinator) {
		if b != nil {
			c.args = b
		}
	}
}

// WithLogger sets the coordinator's logger.
func WithLogger(log Logger) CoordinatorOption {
	return func(c *Coordinator) {
		if log != nil {
			c.log = log
		}
	}
}

// WithWorkspaceRoot sets the workspace root provider.
func WithWorkspaceRoot(fn func() string) CoordinatorOption {
	return func(c *Coordinator) {
		if fn != nil {
			c.workspaceRoot = fn
		}
	}
}

// New creates a Coordinator reading configuration from source.
func New(source ConfigSource, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		source:        source,
		notifier:      notify.NewDispatcher(),
		sup:           process.NewSupervisor(),
		temp:          NewTempManager(),
		args:          NewArgBuilder(),
		log:           nopLogger{},
		workspaceRoot: func() string { return "" },
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Busy reports whether a fix operation is in flight.
func (c *Coordinator) Busy() bool {
	return c.busy.Load()
}

// Fix formats the document text through php-cs-fixer and returns the
// fixed text.
//
// If a fix is already running, Fix returns ErrFixInFlight immediately
// without spawning anything. On every other path the temp file is
// removed and the in-flight slot released before Fix returns.
func (c *Coordinator) Fix(ctx context.Context, doc *editor.Document) (string, error) {
	if !c.busy.CompareAndSwap(false, true) {
		c.log.Debug("fix request dropped, another fix is in flight")
		return "", ErrFixInFlight
	}
	defer c.busy.Store(false)

	cfg := c.source.Current()
	root := c.workspaceRoot()

	tmpPath, err := c.temp.Materialize(doc.Name, doc.Text())
	if err != nil {
		return "", err
	}
	defer c.temp.Release(tmpPath)

	execPath := ResolveExecPath(cfg.ExecPath, root)
	argv := append(c.args.Build(cfg, root), tmpPath)

	c.log.Debug("running %s %v", execPath, argv)

	proc, err := c.sup.Start(processName, exec.Command(execPath, argv...))
	if err != nil {
		// Launch failures are surfaced to the caller only; the fix is
		// rejected without a notification.
		return "", fmt.Errorf("launch %s: %w", execPath, err)
	}

	var streams sync.WaitGroup
	streams.Add(2)
	go func() {
		defer streams.Done()
		c.scanStderr(proc.Stderr)
	}()
	go func() {
		// Stdout is diagnostic only; drain it so the child never
		// blocks on a full pipe.
		defer streams.Done()
		_, _ = io.Copy(io.Discard, proc.Stdout)
	}()

	if err := c.await(ctx, proc, cfg.Timeout); err != nil {
		streams.Wait()
		return "", err
	}
	streams.Wait()

	if code := proc.ExitCode(); code != ExitOK {
		failure := newExitCodeError(code)
		if failure.notifiable() {
			c.notifier.Error(failure.Message, "")
		}
		return "", failure
	}

	fixed, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", fmt.Errorf("read fixed output: %w", err)
	}
	if len(fixed) == 0 {
		// Exit 0 with an empty rewritten file is treated as a failure
		// end to end; no success notification fires.
		return "", ErrEmptyOutput
	}

	c.notifier.Success(successMessage)
	return string(fixed), nil
}

// await waits for the process to exit, killing it when the context is
// canceled or the fix timeout elapses.
func (c *Coordinator) await(ctx context.Context, proc *process.Process, timeout time.Duration) error {
	var timerC <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timerC = timer.C
	}

	select {
	case <-proc.Done():
		return nil

	case <-ctx.Done():
		_ = proc.Kill()
		<-proc.Done()
		return ctx.Err()

	case <-timerC:
		_ = proc.Kill()
		<-proc.Done()
		return fmt.Errorf("%w after %s", ErrTimeout, timeout)
	}
}
