package handlers

import (
	"focusflow/internal/catalog"
	"focusflow/internal/repository"
	"focusflow/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

// HandlerConfig holds configuration for handler
type HandlerConfig struct {
	ReferralLinkBase string
}

type Handler struct {
	DB      *pgxpool.Pool
	Catalog *catalog.Catalog

	Users        *repository.UserRepository
	Tasks        *repository.TaskRepository
	Sessions     *repository.SessionRepository
	Achievements *repository.AchievementRepository
	Badges       *repository.BadgeRepository
	Referrals    *repository.ReferralRepository
	Payments     *repository.PaymentRepository
	Inventories  *repository.InventoryRepository
	Timers       *repository.TimerRepository

	Progression  *service.ProgressionService
	BadgeService *service.BadgeService
	Subscription *service.SubscriptionService
	Wallet       *service.WalletService
	Shop         *service.ShopService
	Rewards      *service.RewardService

	ReferralLinkBase string
}

func NewHandler(db *pgxpool.Pool, cat *catalog.Catalog, provider service.PaymentProvider, notifier service.Notifier, cfg HandlerConfig) *Handler {
	users := repository.NewUserRepository(db)
	tasks := repository.NewTaskRepository(db)
	sessions := repository.NewSessionRepository(db)
	achievements := repository.NewAchievementRepository(db)
	badges := repository.NewBadgeRepository(db)
	referrals := repository.NewReferralRepository(db)
	payments := repository.NewPaymentRepository(db)
	inventories := repository.NewInventoryRepository(db)
	timers := repository.NewTimerRepository(db)

	rewards := service.NewRewardService(users, inventories)
	badgeService := service.NewBadgeService(users, badges, referrals, payments, cat, rewards, notifier)
	progression := service.NewProgressionService(users, tasks, sessions, achievements, cat, badgeService, notifier)
	commissions := service.NewCommissionService(users, referrals, repository.NewWithdrawalRepository(db), progression, badgeService)
	subscription := service.NewSubscriptionService(users, payments, cat, provider, commissions, progression, badgeService)
	wallet := service.NewWalletService(repository.NewWithdrawalRepository(db))
	shop := service.NewShopService(payments, cat, provider, rewards, badgeService)

	return &Handler{
		DB:               db,
		Catalog:          cat,
		Users:            users,
		Tasks:            tasks,
		Sessions:         sessions,
		Achievements:     achievements,
		Badges:           badges,
		Referrals:        referrals,
		Payments:         payments,
		Inventories:      inventories,
		Timers:           timers,
		Progression:      progression,
		BadgeService:     badgeService,
		Subscription:     subscription,
		Wallet:           wallet,
		Shop:             shop,
		Rewards:          rewards,
		ReferralLinkBase: cfg.ReferralLinkBase,
	}
}

// getUserID extracts the authenticated user id set by the JWT middleware.
func getUserID(c interface{ Get(string) (any, bool) }) (string, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return "", false
	}
	uid, ok := uidVal.(string)
	if !ok || uid == "" {
		return "", false
	}
	return uid, true
}
