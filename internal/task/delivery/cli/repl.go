package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"task-tracker/internal/task"
	pkgLog "task-tracker/pkg/log"
)

// REPL reads one command per line from in and writes each reply to out.
type REPL interface {
	Run(ctx context.Context) error
}

type repl struct {
	l   pkgLog.Logger
	uc  task.UseCase
	in  io.Reader
	out io.Writer
}

// New creates a REPL over the given streams.
func New(l pkgLog.Logger, uc task.UseCase, in io.Reader, out io.Writer) REPL {
	return &repl{l: l, uc: uc, in: in, out: out}
}

// Run loads the session, prints the greeting and serves lines until "bye", end of
// input or ctx is cancelled.
func (r *repl) Run(ctx context.Context) error {
	start := r.uc.Start(ctx)
	if err := r.print(start.Greeting); err != nil {
		return err
	}

	scanner := bufio.NewScanner(r.in)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")

		out, err := r.uc.Execute(ctx, task.ExecuteInput{Line: line})
		if err != nil {
			return err
		}
		if err := r.print(out.Reply); err != nil {
			return err
		}
		if out.Exit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	r.l.Debug(ctx, "cli.Run: input closed")
	return nil
}

func (r *repl) print(text string) error {
	_, err := fmt.Fprintln(r.out, text)
	return err
}
