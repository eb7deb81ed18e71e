package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aretw0/countdown/internal/presentation/graph"
	"github.com/aretw0/countdown/internal/runtime"
	"github.com/aretw0/countdown/pkg/domain"
	"github.com/aretw0/countdown/pkg/ports"
	"github.com/dustin/go-humanize"
)

// Status prints the persisted target date without starting the widget.
func Status(ctx context.Context, opts Options, out io.Writer) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}
	defer env.close()
	return printStatus(ctx, env.store, time.Now(), out)
}

func printStatus(ctx context.Context, store ports.DateStore, now time.Time, out io.Writer) error {
	date, err := store.Get(ctx)
	if errors.Is(err, domain.ErrDateNotFound) {
		printSystemMessage(out, "No date selected.")
		return nil
	}
	if err != nil {
		return err
	}

	diff := domain.RemainingParts(int64(date.Sub(now).Round(time.Second) / time.Second))
	when := humanize.RelTime(date, now, "ago", "from now")
	if !date.After(now) {
		printSystemMessage(out, "Target %s arrived %s.", date.Format(time.RFC3339), when)
		return nil
	}
	printSystemMessage(out, "Target %s (%s).", date.Format(time.RFC3339), when)
	fmt.Fprintf(out, "    %s\n", formatParts(diff))
	return nil
}

func formatParts(p domain.Parts) string {
	s := ""
	for _, u := range []domain.Unit{domain.UnitDay, domain.UnitHour, domain.UnitMinute, domain.UnitSecond} {
		if v, ok := p.Get(u); ok {
			if s != "" {
				s += " "
			}
			s += fmt.Sprintf("%d%c", v, u[0])
		}
	}
	return s
}

// Reset removes the persisted date.
func Reset(ctx context.Context, opts Options, out io.Writer) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}
	defer env.close()

	if err := env.store.Remove(ctx); err != nil {
		return fmt.Errorf("failed to reset: %w", err)
	}
	printSystemMessage(out, "Persisted date removed.")
	return nil
}

// Graph prints the transition table as Mermaid, highlighting the state a
// fresh boot would settle in.
func Graph(ctx context.Context, opts Options, out io.Writer) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}
	defer env.close()

	overlay := &graph.Overlay{Visited: []domain.StateName{domain.StatePending}, Current: domain.StateSelectDate}
	if _, err := env.store.Get(ctx); err == nil {
		overlay.Current = domain.StateCountdown
	}
	fmt.Fprint(out, graph.GenerateMermaid(runtime.TransitionTable(), overlay))
	return nil
}
