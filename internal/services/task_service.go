package services

import (
	"context"

	dto "task-manager-api.com/task-manager-api/internal/data_models"
	model "task-manager-api.com/task-manager-api/internal/models"
	repository "task-manager-api.com/task-manager-api/internal/repositories"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// CreateTask expects a request that already passed validation.
func (s *TaskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*model.Task, error) {
	return s.repo.CreateTask(ctx, repository.NewTask{
		Title:       req.Title.Value,
		Description: req.Description.Ptr(),
		Completed:   req.Completed.Set && req.Completed.Value,
	})
}

func (s *TaskService) GetTask(ctx context.Context, id int64) (*model.Task, bool, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context, q dto.ListTasksQuery) ([]model.Task, error) {
	return s.repo.List(ctx, repository.ListFilter{
		Offset:    q.Skip,
		Limit:     q.Limit,
		Completed: q.Completed,
	})
}

func (s *TaskService) UpdateTask(ctx context.Context, id int64, req dto.UpdateTaskRequest) (*model.Task, bool, error) {
	return s.repo.Update(ctx, id, repository.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
}

func (s *TaskService) DeleteTask(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *TaskService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
