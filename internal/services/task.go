package services

import (
	"context"
	"net/http"

	"lab-system/internal/dto"
	"lab-system/internal/entities"
	"lab-system/internal/repositories"
	"lab-system/pkg/constants"
	apperrors "lab-system/pkg/errors"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"
)

type TaskServiceInterface interface {
	GetTasks(ctx context.Context, status string) ([]entities.Task, error)
	FindTask(ctx context.Context, id uint64) (*entities.Task, error)
	CreateTask(ctx context.Context, createDTO dto.CreateTaskDTO) (*entities.Task, error)
	UpdateTask(ctx context.Context, id uint64, updateDTO dto.UpdateTaskDTO) (*entities.Task, error)
	DeleteTask(ctx context.Context, id uint64) error
	ApproveSubtasks(ctx context.Context, id uint64, approveDTO dto.ApproveSubtasksDTO) (*entities.Task, error)
}

type TaskService struct {
	repo   repositories.TaskRepositoryInterface
	logger *zap.Logger
}

func NewTaskService(repo repositories.TaskRepositoryInterface, logger *zap.Logger) TaskServiceInterface {
	return &TaskService{repo: repo, logger: logger}
}

func (s *TaskService) GetTasks(ctx context.Context, status string) ([]entities.Task, error) {
	if status != "" && !constants.IsTaskStatus(status) {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Unknown task status filter", apperrors.ErrBadRequest)
	}
	return s.repo.GetTasks(ctx, status)
}

func (s *TaskService) FindTask(ctx context.Context, id uint64) (*entities.Task, error) {
	return s.repo.FindTask(ctx, id)
}

func (s *TaskService) CreateTask(ctx context.Context, createDTO dto.CreateTaskDTO) (*entities.Task, error) {
	status := createDTO.Status
	if status == "" {
		status = constants.TaskStatusPending
	}

	task := entities.Task{
		Title:       createDTO.Title,
		Status:      status,
		Progress:    createDTO.Progress,
		Description: createDTO.Description,
		AssignedTo:  createDTO.AssignedTo,
		Priority:    createDTO.Priority,
		DueDate:     createDTO.DueDate,
		Subtasks:    subtasksFromDTO(createDTO.Subtasks),
	}

	return s.repo.CreateTask(ctx, task)
}

func (s *TaskService) UpdateTask(ctx context.Context, id uint64, updateDTO dto.UpdateTaskDTO) (*entities.Task, error) {
	return s.repo.UpdateTask(ctx, id, func(current entities.Task) entities.Task {
		merged := current
		if updateDTO.Title != nil {
			merged.Title = *updateDTO.Title
		}
		if updateDTO.Status != nil {
			merged.Status = *updateDTO.Status
		}
		if updateDTO.Progress != nil {
			merged.Progress = *updateDTO.Progress
		}
		if updateDTO.Description != nil {
			merged.Description = null.StringFrom(*updateDTO.Description)
		}
		if updateDTO.AssignedTo != nil {
			merged.AssignedTo = null.StringFrom(*updateDTO.AssignedTo)
		}
		if updateDTO.Priority != nil {
			merged.Priority = null.StringFrom(*updateDTO.Priority)
		}
		if updateDTO.DueDate != nil {
			merged.DueDate = null.StringFrom(*updateDTO.DueDate)
		}
		if updateDTO.Subtasks != nil {
			merged.Subtasks = subtasksFromDTO(*updateDTO.Subtasks)
		}
		return merged
	})
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) error {
	return s.repo.DeleteTask(ctx, id)
}

// ApproveSubtasks stamps approval on the subtasks at the given positions.
// Progress and status are left alone: approval is a review action, not a
// completion signal.
func (s *TaskService) ApproveSubtasks(ctx context.Context, id uint64, approveDTO dto.ApproveSubtasksDTO) (*entities.Task, error) {
	task, err := s.repo.FindTask(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, idx := range approveDTO.Indexes {
		if idx < 0 || idx >= len(task.Subtasks) {
			return nil, apperrors.NewHttpError(http.StatusBadRequest, "Subtask index out of range", apperrors.ErrBadRequest)
		}
	}

	var badIndex bool
	updated, err := s.repo.UpdateTask(ctx, id, func(current entities.Task) entities.Task {
		for _, idx := range approveDTO.Indexes {
			if idx < 0 || idx >= len(current.Subtasks) {
				badIndex = true
				return current
			}
		}

		merged := current
		merged.Subtasks = append([]entities.Subtask(nil), current.Subtasks...)
		for _, idx := range approveDTO.Indexes {
			merged.Subtasks[idx].Approved = true
			merged.Subtasks[idx].ApprovedBy = null.StringFrom(approveDTO.ApprovedBy)
			merged.Subtasks[idx].ApprovalNotes = approveDTO.ApprovalNotes
		}
		return merged
	})
	if err != nil {
		return nil, err
	}
	if badIndex {
		return nil, apperrors.NewHttpError(http.StatusBadRequest, "Subtask index out of range", apperrors.ErrBadRequest)
	}
	return updated, nil
}

func subtasksFromDTO(items []dto.SubtaskDTO) []entities.Subtask {
	subtasks := make([]entities.Subtask, 0, len(items))
	for _, item := range items {
		subtasks = append(subtasks, entities.Subtask{
			Title:         item.Title,
			Completed:     item.Completed,
			Approved:      item.Approved,
			ApprovedBy:    item.ApprovedBy,
			ApprovalNotes: item.ApprovalNotes,
		})
	}
	return subtasks
}
