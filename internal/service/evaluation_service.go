package service

import (
	"context"
	"time"

	"teamtrack/internal/cache"
	"teamtrack/internal/database"
	apperrors "teamtrack/internal/errors"
	"teamtrack/internal/models"
	"teamtrack/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// statsCacheTTL bounds the staleness of cached rating aggregates.
const statsCacheTTL = 5 * time.Minute

// EvaluationService handles business logic for task ratings. A task takes at
// most one rating, and only once it is done.
type EvaluationService struct {
	evalRepo repository.EvaluationRepository
	taskRepo repository.TaskRepository
	teamRepo repository.TeamRepository
	cache    cache.Cache
	tx       database.Transactor
}

// NewEvaluationService creates a new EvaluationService.
func NewEvaluationService(
	evalRepo repository.EvaluationRepository,
	taskRepo repository.TaskRepository,
	teamRepo repository.TeamRepository,
	c cache.Cache,
	tx database.Transactor,
) *EvaluationService {
	return &EvaluationService{
		evalRepo: evalRepo,
		taskRepo: taskRepo,
		teamRepo: teamRepo,
		cache:    c,
		tx:       tx,
	}
}

// RateTask attaches a 1-5 rating to a done task. The rating timestamp is
// normalized to UTC at minute precision.
func (s *EvaluationService) RateTask(ctx context.Context, teamID, taskID primitive.ObjectID, req *models.RateTaskRequest) (*models.Evaluation, error) {
	if req.Value < 1 || req.Value > 5 {
		return nil, apperrors.ErrInvalidRating
	}

	evaluation := &models.Evaluation{
		TaskID:  taskID,
		Value:   req.Value,
		RatedAt: time.Now().UTC().Truncate(time.Minute),
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		task, err := s.taskRepo.FindByTeamAndID(ctx, teamID, taskID)
		if err != nil {
			return err
		}
		if task.Status != models.StatusDone {
			return apperrors.ErrTaskNotDone
		}

		existing, err := s.evalRepo.FindByTaskID(ctx, taskID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperrors.ErrTaskAlreadyRated
		}

		return s.evalRepo.Create(ctx, evaluation)
	})
	if err != nil {
		return nil, err
	}

	// Cached aggregates for the team are stale now.
	_ = s.cache.DeleteByPrefix(ctx, cache.TeamStatsPrefix(teamID.Hex()))

	return evaluation, nil
}

// GetAvgRatingForPeriod returns the average rating of a team's done tasks
// rated within [from, to], both inclusive. Avg is nil when nothing was rated
// in the period. Results are cached briefly.
func (s *EvaluationService) GetAvgRatingForPeriod(ctx context.Context, teamID primitive.ObjectID, from, to time.Time) (*models.RatingStats, error) {
	if to.Before(from) {
		return nil, apperrors.ErrInvalidDateRange
	}

	if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
		return nil, err
	}

	key := cache.TeamStatsCacheKey(teamID.Hex(), from, to)

	var cached models.RatingStats
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	stats, err := s.evalRepo.AvgForPeriod(ctx, teamID, from, to)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, key, stats, statsCacheTTL)

	return stats, nil
}

// ListUserRatings returns the evaluated done tasks of a team assigned to one
// user, most recently rated first, with the running average.
func (s *EvaluationService) ListUserRatings(ctx context.Context, teamID, userID primitive.ObjectID) (*models.UserRatingsResponse, error) {
	if _, err := s.teamRepo.FindByID(ctx, teamID); err != nil {
		return nil, err
	}

	items, err := s.evalRepo.ListUserRatings(ctx, teamID, userID)
	if err != nil {
		return nil, err
	}

	resp := &models.UserRatingsResponse{
		Items: items,
		Count: len(items),
	}
	if len(items) > 0 {
		sum := 0
		for i := range items {
			sum += items[i].Evaluation.Value
		}
		avg := float64(sum) / float64(len(items))
		resp.Avg = &avg
	}

	return resp, nil
}

// GetTaskRating returns the evaluation of a task, if any.
func (s *EvaluationService) GetTaskRating(ctx context.Context, teamID, taskID primitive.ObjectID) (*models.Evaluation, error) {
	if _, err := s.taskRepo.FindByTeamAndID(ctx, teamID, taskID); err != nil {
		return nil, err
	}

	evaluation, err := s.evalRepo.FindByTaskID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if evaluation == nil {
		return nil, apperrors.ErrTaskNotFound
	}

	return evaluation, nil
}
