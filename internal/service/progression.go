package service

import (
	"context"
	"errors"
	"time"

	"focusflow/internal/catalog"
	"focusflow/internal/domain"
	"focusflow/internal/logger"
	"focusflow/internal/repository"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrUnitNotFound     = errors.New("not found")
	ErrAlreadyCompleted = errors.New("already completed")
)

// CompletionResult is what a completion endpoint reports back: the XP that
// was credited, the user's post-completion state and any achievements the
// completion unlocked.
type CompletionResult struct {
	XPAwarded       int                   `json:"xp_awarded"`
	User            *domain.User          `json:"user"`
	NewAchievements []*domain.Achievement `json:"new_achievements"`
}

// ProgressionService owns the task/session completion path: crediting,
// achievement evaluation and badge re-evaluation.
type ProgressionService struct {
	users        *repository.UserRepository
	tasks        *repository.TaskRepository
	sessions     *repository.SessionRepository
	achievements *repository.AchievementRepository
	catalog      *catalog.Catalog
	badges       *BadgeService
	notifier     Notifier
}

func NewProgressionService(
	users *repository.UserRepository,
	tasks *repository.TaskRepository,
	sessions *repository.SessionRepository,
	achievements *repository.AchievementRepository,
	cat *catalog.Catalog,
	badges *BadgeService,
	notifier Notifier,
) *ProgressionService {
	return &ProgressionService{
		users:        users,
		tasks:        tasks,
		sessions:     sessions,
		achievements: achievements,
		catalog:      cat,
		badges:       badges,
		notifier:     notifier,
	}
}

// CompleteTask flips the task exactly once and credits its reward. The
// conditional UPDATE inside the repository is the only double-completion
// guard; when it claims zero rows we report conflict without mutating
// anything.
func (s *ProgressionService) CompleteTask(ctx context.Context, userID, taskID string) (*CompletionResult, error) {
	task, err := s.tasks.GetByID(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}
	now := time.Now().UTC()
	if err := s.tasks.Complete(ctx, taskID, userID, now); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUnitNotFound
		case errors.Is(err, repository.ErrAlreadyCompleted):
			return nil, ErrAlreadyCompleted
		}
		return nil, err
	}
	ActivityCompletions.WithLabelValues("task").Inc()
	return s.credit(ctx, userID, task.XPEarned, "tasks_completed", now)
}

// CompleteFocusSession is the session counterpart of CompleteTask.
func (s *ProgressionService) CompleteFocusSession(ctx context.Context, userID, sessionID string) (*CompletionResult, error) {
	session, err := s.sessions.GetByID(ctx, sessionID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}
	now := time.Now().UTC()
	if err := s.sessions.Complete(ctx, sessionID, userID, now); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrUnitNotFound
		case errors.Is(err, repository.ErrAlreadyCompleted):
			return nil, ErrAlreadyCompleted
		}
		return nil, err
	}
	ActivityCompletions.WithLabelValues("focus_session").Inc()
	return s.credit(ctx, userID, session.XPEarned, "focus_sessions_completed", now)
}

func (s *ProgressionService) credit(ctx context.Context, userID string, baseXP int, counter string, now time.Time) (*CompletionResult, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	oldLevel := user.Level

	xp := user.ActivityReward(baseXP)
	if err := s.users.CreditActivity(ctx, userID, xp, counter, now); err != nil {
		return nil, err
	}

	awarded, err := s.EvaluateAchievements(ctx, userID)
	if err != nil {
		// The completion already succeeded; a failed evaluation is re-run on
		// the next activity, so log and keep going.
		logger.Error("achievement evaluation failed", "user_id", userID, "err", err)
	}
	// Level/session/streak badges unlock off the same counters; same re-run
	// guarantee as achievements.
	if _, err := s.badges.Evaluate(ctx, userID); err != nil {
		logger.Error("badge evaluation failed", "user_id", userID, "err", err)
	}

	fresh, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(userID, XPGainedEvent{Type: "xp_gained", XP: xp, TotalXP: fresh.TotalXP, Level: fresh.Level})
	if fresh.Level > oldLevel {
		s.notifier.Publish(userID, LevelUpEvent{Type: "level_up", OldLevel: oldLevel, NewLevel: fresh.Level})
	}

	return &CompletionResult{XPAwarded: xp, User: fresh, NewAchievements: awarded}, nil
}

// EvaluateAchievements awards every newly-satisfied rule. Safe to re-run at
// any time: the unique (user_id, achievement_type) key makes a repeated pass
// a no-op, and the bonus XP of all fresh awards is credited in a single
// increment at the end.
func (s *ProgressionService) EvaluateAchievements(ctx context.Context, userID string) ([]*domain.Achievement, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var awarded []*domain.Achievement
	bonusXP := 0
	for _, rule := range s.catalog.Achievements {
		if !rule.Satisfied(user) {
			continue
		}
		a := &domain.Achievement{
			UserID:          userID,
			AchievementType: rule.Type,
			Title:           rule.ResolveTitle(user.SubscriptionTier),
			Description:     rule.Description,
			XPReward:        rule.XP,
		}
		inserted, err := s.achievements.Award(ctx, a)
		if err != nil {
			return awarded, err
		}
		if !inserted {
			continue
		}
		AchievementsUnlocked.Inc()
		awarded = append(awarded, a)
		bonusXP += rule.XP
		s.notifier.Publish(userID, AchievementUnlockedEvent{
			Type: "achievement_unlocked", Achievement: a.AchievementType,
			Title: a.Title, XPReward: a.XPReward,
		})
	}
	if bonusXP > 0 {
		if err := s.users.AddXP(ctx, userID, bonusXP); err != nil {
			return awarded, err
		}
	}
	return awarded, nil
}
