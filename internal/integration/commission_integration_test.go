package integration

import (
	"context"
	"testing"

	"focusflow/internal/catalog"
	"focusflow/internal/repository"
	"focusflow/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func newCommission(db *pgxpool.Pool) (*service.CommissionService, *repository.UserRepository, *repository.ReferralRepository, *repository.WithdrawalRepository) {
	users := repository.NewUserRepository(db)
	referrals := repository.NewReferralRepository(db)
	withdrawals := repository.NewWithdrawalRepository(db)
	prog, _, _ := newProgression(db)
	cat := catalog.Default()
	rewards := service.NewRewardService(users, repository.NewInventoryRepository(db))
	badges := service.NewBadgeService(users, repository.NewBadgeRepository(db),
		referrals, repository.NewPaymentRepository(db), cat, rewards, service.NopNotifier())
	return service.NewCommissionService(users, referrals, withdrawals, prog, badges), users, referrals, withdrawals
}

func TestCommissionPipeline_ExactlyOnce(t *testing.T) {
	db := testDB(t)
	commissions, users, referrals, withdrawals := newCommission(db)
	referrer := createUser(t, users)
	buyer := createUser(t, users)
	ctx := context.Background()
	pkg := catalog.Default().Package("monthly_premium")

	sessionID := "sess_" + uuid.NewString()
	outcome := commissions.Process(ctx, buyer, pkg, sessionID, referrer.ReferralCode)
	if outcome != service.CommissionApplied {
		t.Fatalf("first outcome = %s, want applied", outcome)
	}

	// retried confirmation of the same session pays nothing more
	outcome = commissions.Process(ctx, buyer, pkg, sessionID, referrer.ReferralCode)
	if outcome != service.CommissionDuplicate {
		t.Fatalf("second outcome = %s, want duplicate", outcome)
	}

	refs, err := referrals.ListByReferrer(ctx, referrer.ID)
	if err != nil {
		t.Fatalf("list referrals: %v", err)
	}
	if len(refs) != 1 {
		t.Fatalf("referrals = %d, want 1", len(refs))
	}

	var commissionRows int64
	if err := db.QueryRow(ctx,
		`SELECT COUNT(*) FROM commissions WHERE referrer_id = $1`, referrer.ID).Scan(&commissionRows); err != nil {
		t.Fatalf("count commissions: %v", err)
	}
	if commissionRows != 1 {
		t.Fatalf("commission records = %d, want 1", commissionRows)
	}

	available, err := withdrawals.AvailableTotal(ctx, referrer.ID)
	if err != nil {
		t.Fatalf("available: %v", err)
	}
	if !available.Equal(pkg.Commission) {
		t.Errorf("available balance = %s, want %s", available, pkg.Commission)
	}

	got, err := users.GetByID(ctx, referrer.ID)
	if err != nil {
		t.Fatalf("get referrer: %v", err)
	}
	if got.TotalReferrals != 1 {
		t.Errorf("total referrals = %d, want 1", got.TotalReferrals)
	}
	if !got.TotalCommissionEarned.Equal(pkg.Commission) {
		t.Errorf("total commission = %s, want %s", got.TotalCommissionEarned, pkg.Commission)
	}
}

func TestCommissionPipeline_CodeGatesThePayout(t *testing.T) {
	db := testDB(t)
	commissions, users, referrals, _ := newCommission(db)
	referrer := createUser(t, users)
	ctx := context.Background()
	pkg := catalog.Default().Package("monthly_premium")

	// a buyer attributed at signup still pays nothing without a checkout code
	attributed := createUser(t, users)
	attributed.ReferredBy = &referrer.ID

	outcome := commissions.Process(ctx, attributed, pkg, "sess_"+uuid.NewString(), "")
	if outcome != service.CommissionSkippedNoReferral {
		t.Fatalf("no-code outcome = %s, want skipped_no_referral", outcome)
	}

	outcome = commissions.Process(ctx, attributed, pkg, "sess_"+uuid.NewString(), "nosuchcode")
	if outcome != service.CommissionSkippedNoReferral {
		t.Fatalf("unknown-code outcome = %s, want skipped_no_referral", outcome)
	}

	refs, err := referrals.ListByReferrer(ctx, referrer.ID)
	if err != nil {
		t.Fatalf("list referrals: %v", err)
	}
	if len(refs) != 0 {
		t.Fatalf("referrals = %d, want 0", len(refs))
	}

	got, err := users.GetByID(ctx, referrer.ID)
	if err != nil {
		t.Fatalf("get referrer: %v", err)
	}
	if got.TotalReferrals != 0 {
		t.Errorf("total referrals = %d, want 0", got.TotalReferrals)
	}
}
