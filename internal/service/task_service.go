package service

import (
	"context"

	"teamtrack/internal/database"
	apperrors "teamtrack/internal/errors"
	"teamtrack/internal/models"
	"teamtrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaskService handles business logic for task operations. Tasks belong to a
// team and only their author may mutate or delete them.
type TaskService struct {
	taskRepo    repository.TaskRepository
	commentRepo repository.TaskCommentRepository
	evalRepo    repository.EvaluationRepository
	teamRepo    repository.TeamRepository
	userRepo    repository.UserRepository
	tx          database.Transactor
}

// NewTaskService creates a new TaskService.
func NewTaskService(
	taskRepo repository.TaskRepository,
	commentRepo repository.TaskCommentRepository,
	evalRepo repository.EvaluationRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
	tx database.Transactor,
) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		commentRepo: commentRepo,
		evalRepo:    evalRepo,
		teamRepo:    teamRepo,
		userRepo:    userRepo,
		tx:          tx,
	}
}

// CreateTask creates a task in a team. The name must be free within the team
// (case-insensitive) and the assignee, when supplied, must exist. New tasks
// always start open.
func (s *TaskService) CreateTask(ctx context.Context, teamID, authorID primitive.ObjectID, req *models.CreateTaskRequest) (*models.Task, error) {
	if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindByID(ctx, authorID); err != nil {
		return nil, err
	}

	var assigneeID *primitive.ObjectID
	if req.AssigneeID != nil {
		id, err := primitive.ObjectIDFromHex(*req.AssigneeID)
		if err != nil {
			return nil, apperrors.ErrUserNotFound
		}
		if _, err := s.userRepo.FindByID(ctx, id); err != nil {
			return nil, err
		}
		assigneeID = &id
	}

	taken, err := s.taskRepo.NameExists(ctx, teamID, req.Name, nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrTaskNameTaken
	}

	task := &models.Task{
		TeamID:      teamID,
		AuthorID:    authorID,
		AssigneeID:  assigneeID,
		Name:        req.Name,
		Description: req.Description,
		DeadlineAt:  req.DeadlineAt,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// GetTask retrieves a task scoped to its team.
func (s *TaskService) GetTask(ctx context.Context, teamID, taskID primitive.ObjectID) (*models.Task, error) {
	return s.taskRepo.FindByTeamAndID(ctx, teamID, taskID)
}

// ListTeamTasks returns all tasks of a team.
func (s *TaskService) ListTeamTasks(ctx context.Context, teamID primitive.ObjectID) ([]models.Task, error) {
	if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
		return nil, err
	}
	return s.taskRepo.FindByTeamID(ctx, teamID)
}

// UpdateTask merges the supplied fields into a task. Only the author may
// update a task; fields absent from the request are left untouched.
func (s *TaskService) UpdateTask(ctx context.Context, teamID, taskID, actorID primitive.ObjectID, req *models.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.FindByTeamAndID(ctx, teamID, taskID)
	if err != nil {
		return nil, err
	}
	if task.AuthorID != actorID {
		return nil, apperrors.ErrNotTaskAuthor
	}

	if req.Name != nil {
		taken, err := s.taskRepo.NameExists(ctx, teamID, *req.Name, &taskID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrTaskNameTaken
		}
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DeadlineAt != nil {
		task.DeadlineAt = req.DeadlineAt
	}
	if req.AssigneeID != nil {
		id, err := primitive.ObjectIDFromHex(*req.AssigneeID)
		if err != nil {
			return nil, apperrors.ErrUserNotFound
		}
		if _, err := s.userRepo.FindByID(ctx, id); err != nil {
			return nil, err
		}
		task.AssigneeID = &id
	}
	if req.Status != nil {
		task.Status = *req.Status
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// DeleteTask removes a task with its comments and evaluation. Only the
// author may delete a task.
func (s *TaskService) DeleteTask(ctx context.Context, teamID, taskID, actorID primitive.ObjectID) error {
	task, err := s.taskRepo.FindByTeamAndID(ctx, teamID, taskID)
	if err != nil {
		return err
	}
	if task.AuthorID != actorID {
		return apperrors.ErrNotTaskAuthor
	}

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.commentRepo.DeleteAllByTaskID(ctx, taskID); err != nil {
			return err
		}
		if err := s.evalRepo.DeleteByTaskID(ctx, taskID); err != nil {
			return err
		}
		return s.taskRepo.Delete(ctx, teamID, taskID)
	})
}

// AddComment attaches a comment to a task. Any authenticated user may
// comment.
func (s *TaskService) AddComment(ctx context.Context, teamID, taskID, authorID primitive.ObjectID, req *models.CreateTaskCommentRequest) (*models.TaskComment, error) {
	if _, err := s.taskRepo.FindByTeamAndID(ctx, teamID, taskID); err != nil {
		return nil, err
	}

	comment := &models.TaskComment{
		TaskID:   taskID,
		AuthorID: authorID,
		Body:     req.Body,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

// ListComments returns the comments of a task, oldest first.
func (s *TaskService) ListComments(ctx context.Context, teamID, taskID primitive.ObjectID) ([]models.TaskComment, error) {
	if _, err := s.taskRepo.FindByTeamAndID(ctx, teamID, taskID); err != nil {
		return nil, err
	}
	return s.commentRepo.FindByTaskID(ctx, taskID)
}
