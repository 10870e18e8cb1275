package process

import (
	"fmt"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Supervisor starts child processes and guarantees none outlive the
// session: Shutdown terminates stragglers, escalating to SIGKILL after
// a grace period. It is safe for concurrent use.
type Supervisor struct {
	mu        sync.RWMutex
	processes map[string]*Process

	// closed indicates the supervisor has been shut down.
	closed atomic.Bool
}

// NewSupervisor creates a new process supervisor.
func NewSupervisor() *Supervisor {
	return &Supervisor{
		processes: make(map[string]*Process),
	}
}

// Start starts a new managed process with piped stdout and stderr.
//
// Returns ErrSupervisorShutdown if the supervisor is shutting down.
// A command that fails to start is not tracked.
func (s *Supervisor) Start(name string, cmd *exec.Cmd) (*Process, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() {
		return nil, ErrSupervisorShutdown
	}

	proc := newProcess(uuid.New().String(), name, cmd)

	var createdPipes []interface{ Close() error }
	cleanupPipes := func() {
		for _, p := range createdPipes {
			_ = p.Close()
		}
	}

	if cmd.Stdout == nil {
		stdoutPipe, err := cmd.StdoutPipe()
		if err != nil {
			cleanupPipes()
			return nil, fmt.Errorf("create stdout pipe: %w", err)
		}
		proc.Stdout = stdoutPipe
		createdPipes = append(createdPipes, stdoutPipe)
	}

	if cmd.Stderr == nil {
		stderrPipe, err := cmd.StderrPipe()
		if err != nil {
			cleanupPipes()
			return nil, fmt.Errorf("create stderr pipe: %w", err)
		}
		proc.Stderr = stderrPipe
		createdPipes = append(createdPipes, stderrPipe)
	}

	if err := proc.start(); err != nil {
		cleanupPipes()
		return nil, err
	}

	s.processes[proc.ID] = proc

	go s.monitorProcess(proc)

	return proc, nil
}

// monitorProcess removes a process from tracking once it exits.
func (s *Supervisor) monitorProcess(proc *Process) {
	<-proc.Done()

	s.mu.Lock()
	delete(s.processes, proc.ID)
	s.mu.Unlock()
}

// Get returns a process by ID, or nil if it is not tracked.
func (s *Supervisor) Get(id string) *Process {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.processes[id]
}

// Count returns the number of tracked processes.
func (s *Supervisor) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.processes)
}

// Shutdown gracefully shuts down all tracked processes.
//
// It sends SIGTERM and waits up to timeout for the processes to exit;
// anything still running after the timeout is killed. Shutdown blocks
// until all processes have exited and been removed from tracking.
func (s *Supervisor) Shutdown(timeout time.Duration) {
	if s.closed.Swap(true) {
		return
	}

	s.mu.RLock()
	procs := make([]*Process, 0, len(s.processes))
	for _, p := range s.processes {
		procs = append(procs, p)
	}
	s.mu.RUnlock()

	if len(procs) == 0 {
		return
	}

	for _, p := range procs {
		if p.IsRunning() {
			_ = p.Terminate()
		}
	}

	done := make(chan struct{})
	go func() {
		for _, p := range procs {
			<-p.Done()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		for _, p := range procs {
			if p.IsRunning() {
				_ = p.Kill()
			}
		}
		<-done
	}

	// Wait for monitor goroutines to remove the processes.
	for {
		s.mu.RLock()
		count := len(s.processes)
		s.mu.RUnlock()
		if count == 0 {
			return
		}
		time.Sleep(time.Millisecond)
	}
}

// IsShuttingDown returns true if the supervisor has been shut down.
func (s *Supervisor) IsShuttingDown() bool {
	return s.closed.Load()
}

// ErrSupervisorShutdown is returned when the supervisor is shutting down.
var ErrSupervisorShutdown = fmt.Errorf("supervisor is shutting down")
