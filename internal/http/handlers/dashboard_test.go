package handlers

import (
	"testing"
	"time"
)

func TestDailyColorTheme(t *testing.T) {
	// 2026-08-24 is a Monday
	monday := time.Date(2026, time.August, 24, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		day  time.Time
		name string
	}{
		{monday, "Motivation Monday"},
		{monday.AddDate(0, 0, 1), "Tranquil Tuesday"},
		{monday.AddDate(0, 0, 2), "Wonderful Wednesday"},
		{monday.AddDate(0, 0, 3), "Thoughtful Thursday"},
		{monday.AddDate(0, 0, 4), "Fresh Friday"},
		{monday.AddDate(0, 0, 5), "Serene Saturday"},
		{monday.AddDate(0, 0, 6), "Soulful Sunday"},
	}

	for _, tc := range cases {
		theme := dailyColorTheme(tc.day)
		if theme["name"] != tc.name {
			t.Errorf("%s: theme = %v, want %q", tc.day.Weekday(), theme["name"], tc.name)
		}
		if theme["primary"] == "" || theme["secondary"] == "" {
			t.Errorf("%s: missing colors in %v", tc.day.Weekday(), theme)
		}
	}
}

func TestDailyColorThemeEveryWeekdayDefined(t *testing.T) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if _, ok := dailyThemes[d]; !ok {
			t.Errorf("no theme for %s", d)
		}
	}
}
