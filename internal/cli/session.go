package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/countdown"
	"github.com/aretw0/countdown/internal/presentation/tui"
	"github.com/aretw0/countdown/pkg/domain"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// RunSession runs the widget interactively on the terminal until the user
// quits, stdin closes or a signal arrives.
func RunSession(opts Options) error {
	env, err := setup(opts)
	if err != nil {
		return err
	}
	defer env.close()

	plain := opts.Plain || !term.IsTerminal(int(os.Stdout.Fd()))
	var viewOpts []tui.Option
	if plain {
		viewOpts = append(viewOpts, tui.WithPlain())
	} else {
		tui.PrintBanner(os.Stdout, termenv.ColorProfile(), countdown.Version)
	}
	view := tui.NewTerminal(os.Stdout, viewOpts...)

	widget, runner, err := env.newWidget(view, opts.Debug)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	if err := widget.Boot(sigCtx); err != nil {
		return fmt.Errorf("failed to start countdown: %w", err)
	}

	runErr := runLoop(sigCtx, widget, NewInterruptibleReader(os.Stdin, sigCtx.Done()), os.Stdout)

	_ = widget.Close()
	view.Wait()
	if runner != nil {
		runner.Wait()
	}

	if sig := sigCtx.Signal(); sig != nil {
		fmt.Println()
		printSystemMessage(os.Stdout, "Interrupted in '%s' state.", widget.Snapshot().State)
	}
	return handleExecutionError(runErr)
}

// runLoop feeds stdin lines to the widget:
//
//	yyyy-mm-dd  select a date
//	change      go back to date selection
//	finish      jump to five seconds before the end
//	status      print the current state
//	quit        leave
func runLoop(ctx context.Context, w *countdown.Widget, in io.Reader, out io.Writer) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			quit, err := handleLine(ctx, w, line, out)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

func handleLine(ctx context.Context, w *countdown.Widget, line string, out io.Writer) (bool, error) {
	cmd := strings.TrimSpace(line)
	switch strings.ToLower(cmd) {
	case "":
		return false, nil
	case "q", "quit", "exit":
		return true, nil
	case "change":
		return false, w.Send(ctx, domain.NewInput(domain.InputSelectDate, nil))
	case "finish":
		return false, w.Send(ctx, domain.NewInput(domain.InputFinishCountdown, nil))
	case "status":
		printSnapshot(out, w.Snapshot())
		return false, nil
	}
	return false, w.SelectDate(ctx, cmd)
}

func printSnapshot(out io.Writer, snap domain.Snapshot) {
	if snap.Target.IsZero() {
		printSystemMessage(out, "State '%s'.", snap.State)
		return
	}
	printSystemMessage(out, "State '%s', target %s.", snap.State, snap.Target.Format("2006-01-02"))
}
