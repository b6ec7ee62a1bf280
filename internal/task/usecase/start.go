package usecase

import (
	"context"

	"task-tracker/internal/model"
	"task-tracker/internal/task"
	"task-tracker/internal/tasklist"
)

// Start replaces the collection with the stored tasks. A load or decode failure
// leaves the session with an empty list and a loading-error notice.
func (uc *implUseCase) Start(ctx context.Context) task.StartOutput {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	tasks, err := uc.load(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "usecase.Start: starting with an empty list: %v", err)
		uc.list = tasklist.New(nil)
		return task.StartOutput{
			Greeting:   uc.view.LoadingError() + "\n" + uc.view.Greeting(),
			LoadFailed: true,
		}
	}

	uc.list = tasklist.New(tasks)
	uc.l.Infof(ctx, "usecase.Start: loaded %d tasks", uc.list.Len())
	return task.StartOutput{
		Greeting:  uc.view.Greeting(),
		TaskCount: uc.list.Len(),
	}
}

func (uc *implUseCase) load(ctx context.Context) ([]model.Task, error) {
	lines, err := uc.storage.Load(ctx)
	if err != nil {
		return nil, err
	}
	return tasklist.Decode(lines)
}
