package scoring

import (
	"errors"
	"testing"
)

func TestScorePHQ9Bounds(t *testing.T) {
	low, err := ScorePHQ9(uniform(9, 0))
	if err != nil {
		t.Fatalf("ScorePHQ9: %v", err)
	}
	if low.TotalScore != 0 || low.SeverityLevel != SeverityMinimal {
		t.Fatalf("all zero = %d %q", low.TotalScore, low.SeverityLevel)
	}
	if len(low.Recommendations) != 3 {
		t.Fatalf("minimal recommendations = %v", low.Recommendations)
	}

	high, err := ScorePHQ9(uniform(9, 3))
	if err != nil {
		t.Fatalf("ScorePHQ9: %v", err)
	}
	if high.TotalScore != 27 || high.SeverityLevel != SeveritySevere {
		t.Fatalf("all three = %d %q", high.TotalScore, high.SeverityLevel)
	}
	if high.Analysis != phq9Analyses[SeveritySevere] {
		t.Fatalf("analysis = %q", high.Analysis)
	}
}

func TestClassifyPHQ9(t *testing.T) {
	cases := []struct {
		total int
		want  Severity
	}{
		{0, SeverityMinimal}, {4, SeverityMinimal}, {5, SeverityMild}, {9, SeverityMild},
		{10, SeverityModerate}, {14, SeverityModerate}, {15, SeverityModeratelySevere},
		{19, SeverityModeratelySevere}, {20, SeveritySevere}, {27, SeveritySevere},
	}
	for _, c := range cases {
		if got := ClassifyPHQ9(c.total); got != c.want {
			t.Fatalf("ClassifyPHQ9(%d) = %q, want %q", c.total, got, c.want)
		}
		if PHQ9Analysis(c.want) == "" {
			t.Fatalf("no analysis for %q", c.want)
		}
		if n := len(PHQ9Recommendations(c.want)); n > MaxRecommendations {
			t.Fatalf("too many recommendations for %q: %d", c.want, n)
		}
	}
}

func TestScorePHQ9Rejects(t *testing.T) {
	if _, err := ScorePHQ9(uniform(8, 1)); !errors.Is(err, ErrInvalidResponseCount) {
		t.Fatalf("8 entries: err = %v", err)
	}
	if _, err := ScorePHQ9(uniform(21, 1)); !errors.Is(err, ErrInvalidResponseCount) {
		t.Fatalf("21 entries: err = %v", err)
	}
}

func TestRecommendationsAreCopies(t *testing.T) {
	a := PHQ9Recommendations(SeverityMinimal)
	a[0] = "changed"
	if PHQ9Recommendations(SeverityMinimal)[0] == "changed" {
		t.Fatal("recommendation list shares backing array with package state")
	}
}
