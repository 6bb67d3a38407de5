package service

import (
	"context"
	"errors"
	"mindcare_backend/internal/model"
	"mindcare_backend/internal/util"
	"testing"
	"time"
)

func TestSaveMoodSameDayOverwrites(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "a@example.com")
	clk := &clock{now: time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC)}
	f.journal.Now = clk.Now
	ctx := context.Background()

	if _, err := f.journal.SaveMood(ctx, user.ID, MoodInput{MoodLevel: 3, Note: "صبح"}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	clk.now = clk.now.Add(10 * time.Hour)
	res, err := f.journal.SaveMood(ctx, user.ID, MoodInput{MoodLevel: 7, Note: "عصر"})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if res.Streak != 1 {
		t.Errorf("same-day streak = %d, want 1", res.Streak)
	}

	entries, err := f.journal.ListMood(user.ID, 0)
	if err != nil {
		t.Fatalf("ListMood: %v", err)
	}
	if len(entries) != 1 || entries[0].MoodLevel != 7 || entries[0].Note != "عصر" {
		t.Errorf("entries = %+v", entries)
	}
	if entries[0].Analysis.Label != "neutral" {
		t.Errorf("analysis = %+v", entries[0].Analysis)
	}

	p, _ := f.gamification.Get(user.ID)
	if p.XP != 0 {
		t.Errorf("mood entries should not award xp, got %d", p.XP)
	}
}

func TestJournalStreakAcrossDays(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "a@example.com")
	clk := &clock{now: time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC)}
	f.journal.Now = clk.Now
	ctx := context.Background()

	steps := []struct {
		advance time.Duration
		want    int
	}{
		{0, 1},
		{2 * time.Hour, 2},  // 3/10 01:00, next calendar day
		{20 * time.Hour, 2}, // 3/10 21:00, same day
		{50 * time.Hour, 1}, // 3/12 23:00, gap
		{time.Hour, 2},      // 3/13 00:00, next day
	}
	for i, s := range steps {
		clk.now = clk.now.Add(s.advance)
		res, err := f.journal.SaveReflection(ctx, user.ID, "یادداشت")
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if res.Streak != s.want {
			t.Errorf("step %d at %s: streak = %d, want %d", i, clk.now, res.Streak, s.want)
		}
	}

	u, _ := f.userRepo.FindByID(user.ID)
	if u.JournalStreak != 2 {
		t.Errorf("stored streak = %d", u.JournalStreak)
	}
}

func TestSaveSleepAwardsXP(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "a@example.com")

	res, err := f.journal.SaveSleep(context.Background(), user.ID, SleepInput{Hours: 7.5, Quality: 4})
	if err != nil {
		t.Fatalf("SaveSleep: %v", err)
	}
	if res.Progression == nil || res.Progression.XP != 5 {
		t.Errorf("progression = %+v", res.Progression)
	}
	entry, ok := res.Entry.(*model.SleepEntry)
	if !ok || entry.Hours != 7.5 || entry.Day == "" {
		t.Errorf("entry = %#v", res.Entry)
	}
}

func TestJournalValidation(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "a@example.com")
	ctx := context.Background()

	errs := []error{
		func() error { _, err := f.journal.SaveMood(ctx, user.ID, MoodInput{MoodLevel: 0}); return err }(),
		func() error { _, err := f.journal.SaveMood(ctx, user.ID, MoodInput{MoodLevel: 11}); return err }(),
		func() error { _, err := f.journal.SaveSleep(ctx, user.ID, SleepInput{Hours: 25, Quality: 3}); return err }(),
		func() error { _, err := f.journal.SaveSleep(ctx, user.ID, SleepInput{Hours: 8, Quality: 0}); return err }(),
		func() error { _, err := f.journal.SaveReflection(ctx, user.ID, "  "); return err }(),
	}
	for i, err := range errs {
		if !errors.Is(err, util.ErrValidation) {
			t.Errorf("case %d: err = %v, want ErrValidation", i, err)
		}
	}
}

func TestSentimentFailureDegradesToNeutral(t *testing.T) {
	f := newFixture(t)
	f.journal.Sentiment = failingClassifier{}
	user := f.register(t, "a@example.com")

	res, err := f.journal.SaveMood(context.Background(), user.ID, MoodInput{MoodLevel: 5, Note: "خسته‌ام"})
	if err != nil {
		t.Fatalf("SaveMood: %v", err)
	}
	entry := res.Entry.(*model.MoodEntry)
	if entry.Analysis.Label != "neutral" || entry.Analysis.Score != 0 {
		t.Errorf("analysis = %+v", entry.Analysis)
	}
}

func TestSaveForDeletedUserWritesNothing(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "a@example.com")
	if err := f.db.Delete(&model.User{}, "id = ?", user.ID).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}
	ctx := context.Background()

	if _, err := f.journal.SaveMood(ctx, user.ID, MoodInput{MoodLevel: 5}); !errors.Is(err, util.ErrUserNotFound) {
		t.Errorf("SaveMood err = %v", err)
	}
	if _, err := f.journal.SaveReflection(ctx, user.ID, "امروز"); !errors.Is(err, util.ErrUserNotFound) {
		t.Errorf("SaveReflection err = %v", err)
	}
	var count int64
	f.db.Model(&model.MoodEntry{}).Count(&count)
	if count != 0 {
		t.Errorf("%d mood entries stored for a deleted user", count)
	}
}
