package service

import (
	"errors"
	"mindcare_backend/internal/util"
	"testing"
)

func TestJourneyLifecycle(t *testing.T) {
	f := newFixture(t)
	user := f.register(t, "a@example.com")

	if _, err := f.journey.Progress(user.ID, "sleep-champion"); !errors.Is(err, util.ErrProgressNotFound) {
		t.Fatalf("progress before start err = %v", err)
	}

	v, err := f.journey.Start(user.ID, "sleep-champion")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if v.CurrentStep != 0 || v.Completed || v.NextTask == "" {
		t.Errorf("started = %+v", v)
	}

	for i := 0; i < 5; i++ {
		if v, err = f.journey.Advance(user.ID, "sleep-champion"); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	if v.CurrentStep != v.TotalSteps || !v.Completed || v.NextTask != "" {
		t.Errorf("after advancing past the end = %+v", v)
	}

	got, err := f.journey.Progress(user.ID, "sleep-champion")
	if err != nil {
		t.Fatalf("Progress: %v", err)
	}
	if got.CurrentStep != v.TotalSteps {
		t.Errorf("stored step = %d", got.CurrentStep)
	}
}

func TestJourneyUnknown(t *testing.T) {
	f := newFixture(t)
	if _, err := f.journey.Get("marathon"); !errors.Is(err, util.ErrJourneyNotFound) {
		t.Errorf("Get err = %v", err)
	}
	if _, err := f.journey.Start("u1", "marathon"); !errors.Is(err, util.ErrJourneyNotFound) {
		t.Errorf("Start err = %v", err)
	}
	if len(f.journey.List()) != 3 {
		t.Errorf("List = %d journeys", len(f.journey.List()))
	}
}
