package catalog

import (
	"testing"
	"testing/fstest"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for typ, n := range map[string]int{"DASS-21": 21, "PHQ-9": 9} {
		q, ok := c.Questionnaire(typ)
		if !ok {
			t.Fatalf("questionnaire %s missing", typ)
		}
		if len(q.Questions) != n {
			t.Fatalf("%s has %d questions, want %d", typ, len(q.Questions), n)
		}
		if len(q.Options) != 4 || q.Options[3].Value != 3 {
			t.Fatalf("%s options = %+v", typ, q.Options)
		}
	}

	journeys := c.Journeys()
	if len(journeys) < 3 {
		t.Fatalf("got %d journeys, want at least 3", len(journeys))
	}
	for _, j := range journeys {
		if j.ID == "" || j.Name == "" || j.Description == "" || len(j.Tasks) == 0 {
			t.Fatalf("incomplete journey %+v", j)
		}
	}
	if _, ok := c.Journey("sleep-champion"); !ok {
		t.Fatal("sleep-champion journey missing")
	}
	if _, ok := c.Journey("unknown"); ok {
		t.Fatal("unknown journey found")
	}

	plan := c.Plan()
	if len(plan.DailyHabits) != 4 || len(plan.WeeklyGoals) != 3 {
		t.Fatalf("plan = %+v", plan)
	}
	if plan.EmergencyContacts["crisis_line"] != "۱۴۸۰" {
		t.Fatalf("crisis line = %q", plan.EmergencyContacts["crisis_line"])
	}
}

func TestJourneysReturnsCopy(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	js := c.Journeys()
	js[0].ID = "changed"
	if c.Journeys()[0].ID == "changed" {
		t.Fatal("Journeys exposes internal slice")
	}
}

func TestLoadFSRejectsBadIDs(t *testing.T) {
	fsys := fstest.MapFS{
		"d/questionnaires.yaml": {Data: []byte("questionnaires:\n  - type: X\n    questions:\n      - {id: 2, text: a}\n")},
		"d/journeys.yaml":       {Data: []byte("journeys: []\n")},
		"d/plan.yaml":           {Data: []byte("daily_habits: []\n")},
	}
	if _, err := LoadFS(fsys, "d"); err == nil {
		t.Fatal("expected error for out-of-order question id")
	}

	fsys["d/questionnaires.yaml"] = &fstest.MapFile{Data: []byte("questionnaires: []\n")}
	fsys["d/journeys.yaml"] = &fstest.MapFile{Data: []byte("journeys:\n  - {id: a}\n  - {id: a}\n")}
	if _, err := LoadFS(fsys, "d"); err == nil {
		t.Fatal("expected error for duplicated journey id")
	}
}
