package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	dto "task-manager-api.com/task-manager-api/internal/data_models"
	model "task-manager-api.com/task-manager-api/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

// NewTask holds the client-supplied fields of a task about to be inserted.
type NewTask struct {
	Title       string
	Description *string
	Completed   bool
}

// TaskPatch lists the fields an update may change. Fields that are not Set
// keep their stored value; a Set and Null description clears it.
type TaskPatch struct {
	Title       dto.Optional[string]
	Description dto.Optional[string]
	Completed   dto.Optional[bool]
}

type ListFilter struct {
	Offset    int
	Limit     int
	Completed *bool
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, in NewTask) (*model.Task, error) {
	task := &model.Task{
		Title:       in.Title,
		Description: in.Description,
		Completed:   in.Completed,
		CreatedAt:   time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(task).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return task, nil
}

// FindByID reports found=false, with a nil error, when no row has the id.
func (r *TaskRepository) FindByID(ctx context.Context, id int64) (*model.Task, bool, error) {
	var task model.Task
	found, err := first(r.db.WithContext(ctx), &task, id)
	if err != nil {
		return nil, false, fmt.Errorf("find task %d: %w", id, err)
	}
	if !found {
		return nil, false, nil
	}
	return &task, true, nil
}

func (r *TaskRepository) List(ctx context.Context, filter ListFilter) ([]model.Task, error) {
	tasks := make([]model.Task, 0)

	query := r.db.WithContext(ctx).Model(&model.Task{})
	if filter.Completed != nil {
		query = query.Where("completed = ?", *filter.Completed)
	}

	err := query.Order("id asc").Offset(filter.Offset).Limit(filter.Limit).Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Update applies the Set fields of patch and refreshes updated_at. When the
// task does not exist nothing is written and found is false.
func (r *TaskRepository) Update(ctx context.Context, id int64, patch TaskPatch) (*model.Task, bool, error) {
	var (
		task  model.Task
		found bool
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		found, err = first(tx, &task, id)
		if err != nil || !found {
			return err
		}

		if patch.Title.Set {
			task.Title = patch.Title.Value
		}
		if patch.Description.Set {
			task.Description = patch.Description.Ptr()
		}
		if patch.Completed.Set {
			task.Completed = patch.Completed.Value
		}

		updatedAt := time.Now().UTC()
		task.UpdatedAt = &updatedAt

		// A row deleted since the read matches nothing; it must stay deleted.
		res := tx.Model(&model.Task{}).Where("id = ?", id).Updates(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"completed":   task.Completed,
			"updated_at":  task.UpdatedAt,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			found = false
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("update task %d: %w", id, err)
	}
	if !found {
		return nil, false, nil
	}

	return &task, true, nil
}

// Delete hard-deletes the task and reports whether a row existed.
func (r *TaskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var found bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var task model.Task
		var err error
		found, err = first(tx, &task, id)
		if err != nil || !found {
			return err
		}
		return tx.Delete(&task).Error
	})
	if err != nil {
		return false, fmt.Errorf("delete task %d: %w", id, err)
	}

	return found, nil
}

func (r *TaskRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func first(db *gorm.DB, task *model.Task, id int64) (bool, error) {
	err := db.First(task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
