// Package process runs external commands when the countdown arrives.
package process

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/countdown/pkg/domain"
)

// DefaultTimeout bounds each command run.
const DefaultTimeout = 30 * time.Second

// Command is an allow-listed process.
type Command struct {
	Name    string
	Command string
	Args    []string
	Env     map[string]string
}

// Result is the outcome of one command run.
type Result struct {
	Name   string
	Output string
	Err    error
}

// Runner executes registered commands on arrival.
// Commands run in the background, so hooks never block dispatch.
type Runner struct {
	commands []Command
	baseDir  string
	timeout  time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	results []Result
	wg      sync.WaitGroup
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithCommands registers commands to run on arrival.
func WithCommands(cmds ...Command) RunnerOption {
	return func(r *Runner) {
		r.commands = append(r.commands, cmds...)
	}
}

// WithBaseDir sets the working directory for executed processes.
func WithBaseDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.baseDir = dir
	}
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.timeout = d
	}
}

// WithLogger sets the logger used to report command failures.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a new process runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		timeout: DefaultTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Hooks returns lifecycle hooks that start every command when a transition
// enters the arrived state.
func (r *Runner) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(ctx context.Context, e *domain.TransitionEvent) {
			if e.To != domain.StateArrived {
				return
			}
			for _, c := range r.commands {
				r.wg.Add(1)
				go func(c Command) {
					defer r.wg.Done()
					r.record(r.Run(context.WithoutCancel(ctx), c, e))
				}(c)
			}
		},
	}
}

// Run executes c synchronously. Event details are passed as COUNTDOWN_*
// environment variables, never as arguments.
func (r *Runner) Run(ctx context.Context, c Command, e *domain.TransitionEvent) Result {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.Command, c.Args...)
	cmd.Dir = r.baseDir

	env := []string{
		"COUNTDOWN_FROM=" + string(e.From),
		"COUNTDOWN_TO=" + string(e.To),
		"COUNTDOWN_INPUT=" + string(e.Input),
	}
	for k, v := range c.Env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}
	cmd.Env = append(cmd.Environ(), env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := Result{Name: c.Name}
	if err := cmd.Run(); err != nil {
		res.Err = fmt.Errorf("command %q failed: %w. Stderr: %s", c.Name, err, strings.TrimSpace(stderr.String()))
		return res
	}
	res.Output = strings.TrimSpace(stdout.String())
	return res
}

func (r *Runner) record(res Result) {
	if res.Err != nil {
		r.logger.Error("arrival command failed", "command", res.Name, "error", res.Err)
	} else {
		r.logger.Info("arrival command finished", "command", res.Name, "output", res.Output)
	}
	r.mu.Lock()
	r.results = append(r.results, res)
	r.mu.Unlock()
}

// Wait blocks until background commands finish and returns their results.
func (r *Runner) Wait() []Result {
	r.wg.Wait()
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}
