package scoring

// PHQ9Questions is the number of items in the PHQ-9 questionnaire.
const PHQ9Questions = 9

var phq9Cutoffs = []cutoff{{4, SeverityMinimal}, {9, SeverityMild}, {14, SeverityModerate}, {19, SeverityModeratelySevere}}

// PHQ9Result holds the unweighted total (0..27) and its severity.
type PHQ9Result struct {
	TotalScore      int
	SeverityLevel   Severity
	Analysis        string
	Recommendations []string
}

func ClassifyPHQ9(total int) Severity {
	return classify(total, phq9Cutoffs, SeveritySevere)
}

// ScorePHQ9 scores a complete PHQ-9 response set.
func ScorePHQ9(responses ResponseSet) (*PHQ9Result, error) {
	if err := responses.Validate(PHQ9Questions); err != nil {
		return nil, err
	}

	total := 0
	for _, v := range responses {
		total += v
	}
	severity := ClassifyPHQ9(total)
	return &PHQ9Result{
		TotalScore:      total,
		SeverityLevel:   severity,
		Analysis:        PHQ9Analysis(severity),
		Recommendations: PHQ9Recommendations(severity),
	}, nil
}
