package usecase

import (
	"context"
	"fmt"
	"strconv"

	"task-tracker/internal/command"
	"task-tracker/internal/model"
	"task-tracker/internal/task"
	"task-tracker/internal/tasklist"
)

// Execute runs one full command cycle: parse, resolve dates, mutate, render, save.
// The collection is saved even when the command fails, so storage always holds the
// latest successful state. A cancelled ctx stops the call before the cycle starts,
// so nothing is parsed or saved.
func (uc *implUseCase) Execute(ctx context.Context, input task.ExecuteInput) (task.ExecuteOutput, error) {
	if err := ctx.Err(); err != nil {
		return task.ExecuteOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	defer uc.save(ctx)

	cmd, err := command.Parse(input.Line)
	if err != nil {
		uc.l.Debugf(ctx, "usecase.Execute: parse %q: %v", input.Line, err)
		return uc.failed("", err), nil
	}

	out, err := uc.dispatch(ctx, cmd)
	if err != nil {
		uc.l.Debugf(ctx, "usecase.Execute: %s: %v", cmd.Kind, err)
		return uc.failed(cmd.Kind, err), nil
	}
	out.Kind = cmd.Kind
	return out, nil
}

func (uc *implUseCase) dispatch(ctx context.Context, cmd command.Command) (task.ExecuteOutput, error) {
	switch cmd.Kind {
	case command.KindExit:
		return task.ExecuteOutput{Reply: uc.view.Farewell(), Exit: true}, nil

	case command.KindListAll:
		return reply(uc.view.List(uc.list.ListFiltered(cmd.Arg(0)))), nil

	case command.KindMark, command.KindUnmark:
		return uc.mark(cmd)

	case command.KindAddTodo:
		t := model.NewTodo(cmd.Arg(0))
		uc.list.Add(t)
		return reply(uc.view.Added(t, uc.list.Len())), nil

	case command.KindAddDeadline:
		by, err := uc.resolveDate(ctx, cmd.Arg(1), fieldDue)
		if err != nil {
			return task.ExecuteOutput{}, err
		}
		t := model.NewDeadline(cmd.Arg(0), by)
		uc.list.Add(t)
		uc.mirror(ctx, t)
		return reply(uc.view.Added(t, uc.list.Len())), nil

	case command.KindAddEvent:
		from, err := uc.resolveDate(ctx, cmd.Arg(1), fieldStart)
		if err != nil {
			return task.ExecuteOutput{}, err
		}
		to, err := uc.resolveDate(ctx, cmd.Arg(2), fieldEnd)
		if err != nil {
			return task.ExecuteOutput{}, err
		}
		t, err := model.NewEvent(cmd.Arg(0), from, to)
		if err != nil {
			return task.ExecuteOutput{}, err
		}
		uc.list.Add(t)
		uc.mirror(ctx, t)
		return reply(uc.view.Added(t, uc.list.Len())), nil

	case command.KindDelete:
		pos, err := uc.position(cmd)
		if err != nil {
			return task.ExecuteOutput{}, err
		}
		t, err := uc.list.Delete(pos)
		if err != nil {
			return task.ExecuteOutput{}, uc.outOfRange(err)
		}
		return reply(uc.view.Deleted(t, uc.list.Len())), nil

	case command.KindFind:
		return reply(uc.view.Matches(tasklist.Collect(uc.list.Find(cmd.Arg(0))))), nil
	}

	return task.ExecuteOutput{}, fmt.Errorf("%w: %s", command.ErrUnknownCommand, cmd.Kind)
}

func (uc *implUseCase) mark(cmd command.Command) (task.ExecuteOutput, error) {
	pos, err := uc.position(cmd)
	if err != nil {
		return task.ExecuteOutput{}, err
	}

	if cmd.Kind == command.KindMark {
		t, err := uc.list.MarkDone(pos)
		if err != nil {
			return task.ExecuteOutput{}, uc.outOfRange(err)
		}
		return reply(uc.view.Marked(t)), nil
	}

	t, err := uc.list.MarkUndone(pos)
	if err != nil {
		return task.ExecuteOutput{}, uc.outOfRange(err)
	}
	return reply(uc.view.Unmarked(t)), nil
}

// position reads the 1-based task number the parser already validated.
func (uc *implUseCase) position(cmd command.Command) (int, error) {
	pos, err := strconv.Atoi(cmd.Arg(0))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", command.ErrInvalidNumber, cmd.Arg(0))
	}
	return pos, nil
}

func (uc *implUseCase) outOfRange(err error) error {
	return fmt.Errorf("%w (you have %d tasks)", err, uc.list.Len())
}

func (uc *implUseCase) failed(kind command.Kind, err error) task.ExecuteOutput {
	return task.ExecuteOutput{
		Reply: uc.view.Error(err),
		Kind:  kind,
		Err:   err,
	}
}

// save writes the whole collection. Failures are logged; the reply is unaffected.
func (uc *implUseCase) save(ctx context.Context) {
	if err := uc.storage.Save(ctx, tasklist.Encode(uc.list.All())); err != nil {
		uc.l.Errorf(ctx, "usecase.save: %v", err)
	}
}
