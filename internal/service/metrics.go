package service

import "github.com/prometheus/client_golang/prometheus"

var (
	ActivityCompletions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "focusflow_activity_completions_total",
			Help: "Completed activities by kind (task, focus_session).",
		},
		[]string{"kind"},
	)
	AchievementsUnlocked = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "focusflow_achievements_unlocked_total",
			Help: "Achievements awarded.",
		},
	)
	BadgesUnlocked = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "focusflow_badges_unlocked_total",
			Help: "Badges awarded.",
		},
	)
	CommissionsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "focusflow_commissions_total",
			Help: "Referral commission outcomes.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(ActivityCompletions, AchievementsUnlocked, BadgesUnlocked, CommissionsProcessed)
}
