package usecase

import (
	"context"

	"task-tracker/internal/task"
)

// List returns the tasks matching input.Type with their positions. Unknown type
// tags give an empty result, the same as "list X".
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	if err := ctx.Err(); err != nil {
		return task.ListOutput{}, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	entries := uc.list.ListFiltered(input.Type)
	items := make([]task.TaskItem, len(entries))
	for i, e := range entries {
		items[i] = task.TaskItem{Position: e.Position, Task: e.Task}
	}
	return task.ListOutput{Tasks: items, Count: len(items)}, nil
}
