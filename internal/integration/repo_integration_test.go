package integration

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"focusflow/internal/domain"
	"focusflow/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

func applyMigrations(t *testing.T, db *pgxpool.Pool) {
	t.Helper()
	migDir := filepath.Join("..", "..", "internal", "migrations")
	files, err := os.ReadDir(migDir)
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	for _, f := range files {
		b, err := os.ReadFile(filepath.Join(migDir, f.Name()))
		if err != nil {
			t.Fatalf("read file: %v", err)
		}
		if _, err := db.Exec(context.Background(), string(b)); err != nil {
			t.Fatalf("apply migration %s: %v", f.Name(), err)
		}
	}
}

func testDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}
	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(db.Close)
	applyMigrations(t, db)
	return db
}

func createUser(t *testing.T, users *repository.UserRepository) *domain.User {
	t.Helper()
	u := &domain.User{
		Name:  "Test User",
		Email: uuid.NewString() + "@example.com",
	}
	if err := users.Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func TestAchievementAward_Idempotent(t *testing.T) {
	db := testDB(t)
	users := repository.NewUserRepository(db)
	achievements := repository.NewAchievementRepository(db)
	u := createUser(t, users)
	ctx := context.Background()

	a := &domain.Achievement{
		UserID:          u.ID,
		AchievementType: "tasks_10",
		Title:           "Task Warrior",
		Description:     "Complete 10 tasks",
		XPReward:        50,
	}
	inserted, err := achievements.Award(ctx, a)
	if err != nil {
		t.Fatalf("award: %v", err)
	}
	if !inserted {
		t.Fatal("first award should insert")
	}

	again := &domain.Achievement{UserID: u.ID, AchievementType: "tasks_10", Title: "Task Warrior", XPReward: 50}
	inserted, err = achievements.Award(ctx, again)
	if err != nil {
		t.Fatalf("second award: %v", err)
	}
	if inserted {
		t.Fatal("second award for the same type must not insert")
	}

	list, err := achievements.ListByUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("achievements = %d, want 1", len(list))
	}
}

func TestTaskComplete_OnlyOnce(t *testing.T) {
	db := testDB(t)
	users := repository.NewUserRepository(db)
	tasks := repository.NewTaskRepository(db)
	u := createUser(t, users)
	ctx := context.Background()

	task := &domain.Task{UserID: u.ID, Title: "write report"}
	if err := tasks.Create(ctx, task); err != nil {
		t.Fatalf("create task: %v", err)
	}

	now := time.Now().UTC()
	if err := tasks.Complete(ctx, task.ID, u.ID, now); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	err := tasks.Complete(ctx, task.ID, u.ID, now)
	if !errors.Is(err, repository.ErrAlreadyCompleted) {
		t.Fatalf("second complete = %v, want ErrAlreadyCompleted", err)
	}

	err = tasks.Complete(ctx, uuid.NewString(), u.ID, now)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("unknown id = %v, want ErrNotFound", err)
	}
}

func TestCreditActivity_CountersAndLevel(t *testing.T) {
	db := testDB(t)
	users := repository.NewUserRepository(db)
	u := createUser(t, users)
	ctx := context.Background()
	now := time.Now().UTC()

	for i := 0; i < 10; i++ {
		if err := users.CreditActivity(ctx, u.ID, 10, "tasks_completed", now); err != nil {
			t.Fatalf("credit: %v", err)
		}
	}

	got, err := users.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TotalXP != 100 {
		t.Errorf("total xp = %d, want 100", got.TotalXP)
	}
	if got.TasksCompleted != 10 {
		t.Errorf("tasks completed = %d, want 10", got.TasksCompleted)
	}
	// 100 XP crosses into level 2
	if got.Level != 2 {
		t.Errorf("level = %d, want 2", got.Level)
	}
	if got.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1 (same-day completions)", got.CurrentStreak)
	}
}

func TestReferralInsert_DuplicateSession(t *testing.T) {
	db := testDB(t)
	users := repository.NewUserRepository(db)
	referrals := repository.NewReferralRepository(db)
	referrer := createUser(t, users)
	buyer := createUser(t, users)
	ctx := context.Background()

	sessionID := "sess_" + uuid.NewString()
	ref := &domain.Referral{
		ReferrerID:       referrer.ID,
		ReferredID:       buyer.ID,
		PaymentSessionID: sessionID,
		PackageID:        "monthly_premium",
		Commission:       decimal.RequireFromString("5.00"),
	}
	inserted, err := referrals.InsertReferral(ctx, ref)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if !inserted {
		t.Fatal("first insert should succeed")
	}

	dup := &domain.Referral{
		ReferrerID:       referrer.ID,
		ReferredID:       buyer.ID,
		PaymentSessionID: sessionID,
		PackageID:        "monthly_premium",
		Commission:       decimal.RequireFromString("5.00"),
	}
	inserted, err = referrals.InsertReferral(ctx, dup)
	if err != nil {
		t.Fatalf("duplicate insert: %v", err)
	}
	if inserted {
		t.Fatal("same payment session must not produce a second referral")
	}

	n, err := referrals.CountCompleted(ctx, referrer.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("completed referrals = %d, want 1", n)
	}
}

func TestWithdrawalRequestAll_ClaimsOnce(t *testing.T) {
	db := testDB(t)
	users := repository.NewUserRepository(db)
	withdrawals := repository.NewWithdrawalRepository(db)
	u := createUser(t, users)
	ctx := context.Background()

	for _, amt := range []string{"5.00", "15.00"} {
		if err := withdrawals.CreateAvailable(ctx, u.ID, decimal.RequireFromString(amt)); err != nil {
			t.Fatalf("credit: %v", err)
		}
	}

	total, count, err := withdrawals.RequestAll(ctx, u.ID, "bank_transfer", time.Now().UTC())
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if count != 2 {
		t.Errorf("claimed entries = %d, want 2", count)
	}
	if !total.Equal(decimal.RequireFromString("20.00")) {
		t.Errorf("claimed total = %s, want 20.00", total)
	}

	total, count, err = withdrawals.RequestAll(ctx, u.ID, "bank_transfer", time.Now().UTC())
	if err != nil {
		t.Fatalf("second request: %v", err)
	}
	if count != 0 || !total.IsZero() {
		t.Errorf("second request claimed %d entries totalling %s, want nothing", count, total)
	}

	remaining, err := withdrawals.AvailableTotal(ctx, u.ID)
	if err != nil {
		t.Fatalf("available: %v", err)
	}
	if !remaining.IsZero() {
		t.Errorf("available after claim = %s, want 0", remaining)
	}
}

func TestInventoryApply_Merges(t *testing.T) {
	db := testDB(t)
	users := repository.NewUserRepository(db)
	inventories := repository.NewInventoryRepository(db)
	u := createUser(t, users)
	ctx := context.Background()

	_, err := inventories.Apply(ctx, u.ID, func(inv *domain.Inventory) {
		inv.Themes = append(inv.Themes, "forest")
		if inv.Powerups == nil {
			inv.Powerups = map[string]int{}
		}
		inv.Powerups["double_xp"] = 2
	})
	if err != nil {
		t.Fatalf("first apply: %v", err)
	}

	inv, err := inventories.Apply(ctx, u.ID, func(inv *domain.Inventory) {
		inv.Powerups["double_xp"] += 3
		inv.Sounds = append(inv.Sounds, "rain")
	})
	if err != nil {
		t.Fatalf("second apply: %v", err)
	}

	if inv.Powerups["double_xp"] != 5 {
		t.Errorf("double_xp = %d, want 5", inv.Powerups["double_xp"])
	}
	if len(inv.Themes) != 1 || inv.Themes[0] != "forest" {
		t.Errorf("themes = %v", inv.Themes)
	}
	if len(inv.Sounds) != 1 || inv.Sounds[0] != "rain" {
		t.Errorf("sounds = %v", inv.Sounds)
	}
}

func TestDowngradeIfExpired(t *testing.T) {
	db := testDB(t)
	users := repository.NewUserRepository(db)
	u := createUser(t, users)
	ctx := context.Background()
	now := time.Now().UTC()

	expired := now.Add(-time.Hour)
	if err := users.SetSubscription(ctx, u.ID, domain.TierPremiumMonthly, expired, "premium"); err != nil {
		t.Fatalf("set subscription: %v", err)
	}

	if err := users.DowngradeIfExpired(ctx, u.ID, now); err != nil {
		t.Fatalf("downgrade: %v", err)
	}
	got, err := users.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SubscriptionTier != domain.TierFree {
		t.Errorf("tier = %s, want free", got.SubscriptionTier)
	}
	if got.SubscriptionExpiresAt != nil {
		t.Errorf("expiry should be cleared, got %v", got.SubscriptionExpiresAt)
	}

	// an active subscription survives the check
	future := now.Add(24 * time.Hour)
	if err := users.SetSubscription(ctx, u.ID, domain.TierPremiumMonthly, future, "premium"); err != nil {
		t.Fatalf("set subscription: %v", err)
	}
	if err := users.DowngradeIfExpired(ctx, u.ID, now); err != nil {
		t.Fatalf("downgrade: %v", err)
	}
	got, err = users.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SubscriptionTier != domain.TierPremiumMonthly {
		t.Errorf("active tier = %s, want premium_monthly", got.SubscriptionTier)
	}
}

func TestPaymentMarkCompleted_Once(t *testing.T) {
	db := testDB(t)
	users := repository.NewUserRepository(db)
	payments := repository.NewPaymentRepository(db)
	u := createUser(t, users)
	ctx := context.Background()

	txn := &domain.PaymentTransaction{
		UserID:    u.ID,
		SessionID: "sess_" + uuid.NewString(),
		PackageID: "monthly_premium",
		Amount:    decimal.RequireFromString("9.99"),
	}
	if err := payments.CreateTransaction(ctx, txn); err != nil {
		t.Fatalf("create: %v", err)
	}

	now := time.Now().UTC()
	flipped, err := payments.MarkCompleted(ctx, txn.SessionID, now)
	if err != nil {
		t.Fatalf("mark completed: %v", err)
	}
	if !flipped {
		t.Fatal("pending transaction should flip to completed")
	}

	flipped, err = payments.MarkCompleted(ctx, txn.SessionID, now)
	if err != nil {
		t.Fatalf("second mark: %v", err)
	}
	if flipped {
		t.Fatal("completed transaction must not flip again")
	}
}
