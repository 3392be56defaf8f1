package integration

import (
	"context"
	"errors"
	"testing"

	"focusflow/internal/catalog"
	"focusflow/internal/domain"
	"focusflow/internal/repository"
	"focusflow/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

func newProgression(db *pgxpool.Pool) (*service.ProgressionService, *repository.UserRepository, *repository.TaskRepository) {
	users := repository.NewUserRepository(db)
	tasks := repository.NewTaskRepository(db)
	sessions := repository.NewSessionRepository(db)
	achievements := repository.NewAchievementRepository(db)
	cat := catalog.Default()
	rewards := service.NewRewardService(users, repository.NewInventoryRepository(db))
	badges := service.NewBadgeService(users, repository.NewBadgeRepository(db),
		repository.NewReferralRepository(db), repository.NewPaymentRepository(db),
		cat, rewards, service.NopNotifier())
	prog := service.NewProgressionService(users, tasks, sessions, achievements, cat, badges, service.NopNotifier())
	return prog, users, tasks
}

func TestThresholdCrossing_AwardsOnce(t *testing.T) {
	db := testDB(t)
	prog, users, tasks := newProgression(db)
	achievements := repository.NewAchievementRepository(db)
	u := createUser(t, users)
	ctx := context.Background()

	// completing 10 tasks crosses the first threshold on the 10th
	var last *service.CompletionResult
	for i := 0; i < 10; i++ {
		task := &domain.Task{UserID: u.ID, Title: "task"}
		if err := tasks.Create(ctx, task); err != nil {
			t.Fatalf("create task: %v", err)
		}
		res, err := prog.CompleteTask(ctx, u.ID, task.ID)
		if err != nil {
			t.Fatalf("complete %d: %v", i+1, err)
		}
		last = res
	}

	found := false
	for _, a := range last.NewAchievements {
		if a.AchievementType == "tasks_10" {
			found = true
		}
	}
	if !found {
		t.Fatal("10th completion should unlock tasks_10")
	}

	// re-running the evaluation must not award again
	again, err := prog.EvaluateAchievements(ctx, u.ID)
	if err != nil {
		t.Fatalf("re-evaluate: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("re-evaluation awarded %d achievements, want 0", len(again))
	}

	list, err := achievements.ListByUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	n := 0
	for _, a := range list {
		if a.AchievementType == "tasks_10" {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("tasks_10 awarded %d times, want 1", n)
	}

	// 10 tasks at 10 XP each plus the 50 XP achievement bonus
	got, err := users.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TotalXP != 150 {
		t.Errorf("total xp = %d, want 150", got.TotalXP)
	}
}

func TestCompletion_UnlocksLevelBadge(t *testing.T) {
	db := testDB(t)
	prog, users, tasks := newProgression(db)
	badges := repository.NewBadgeRepository(db)
	u := createUser(t, users)
	ctx := context.Background()

	// push the user past level 5, then let a completion trigger evaluation
	if err := users.AddXP(ctx, u.ID, 500); err != nil {
		t.Fatalf("add xp: %v", err)
	}
	task := &domain.Task{UserID: u.ID, Title: "trigger"}
	if err := tasks.Create(ctx, task); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := prog.CompleteTask(ctx, u.ID, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	list, err := badges.ListByUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("list badges: %v", err)
	}
	found := false
	for _, b := range list {
		if b.BadgeID == "rising_star" {
			found = true
		}
	}
	if !found {
		t.Fatal("completing an activity at level 5+ should unlock rising_star")
	}
}

func TestCompleteTask_ConflictLeavesCountersAlone(t *testing.T) {
	db := testDB(t)
	prog, users, tasks := newProgression(db)
	u := createUser(t, users)
	ctx := context.Background()

	task := &domain.Task{UserID: u.ID, Title: "once"}
	if err := tasks.Create(ctx, task); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := prog.CompleteTask(ctx, u.ID, task.ID); err != nil {
		t.Fatalf("first complete: %v", err)
	}

	_, err := prog.CompleteTask(ctx, u.ID, task.ID)
	if !errors.Is(err, service.ErrAlreadyCompleted) {
		t.Fatalf("second complete = %v, want ErrAlreadyCompleted", err)
	}

	got, err := users.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TasksCompleted != 1 {
		t.Errorf("tasks completed = %d, want 1", got.TasksCompleted)
	}
	if got.TotalXP != 10 {
		t.Errorf("total xp = %d, want 10", got.TotalXP)
	}
}
