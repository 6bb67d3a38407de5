package scoring

// DASS21Questions is the number of items in the DASS-21 questionnaire.
const DASS21Questions = 21

// Subscale item indices of the published instrument.
var (
	depressionItems = []int{3, 5, 10, 13, 16, 17, 21}
	anxietyItems    = []int{2, 4, 7, 9, 15, 19, 20}
	stressItems     = []int{1, 6, 8, 11, 12, 14, 18}
)

var (
	depressionCutoffs = []cutoff{{9, SeverityNormal}, {13, SeverityMild}, {20, SeverityModerate}, {27, SeveritySevere}}
	anxietyCutoffs    = []cutoff{{7, SeverityNormal}, {9, SeverityMild}, {14, SeverityModerate}, {19, SeveritySevere}}
	stressCutoffs     = []cutoff{{14, SeverityNormal}, {18, SeverityMild}, {25, SeverityModerate}, {33, SeveritySevere}}
)

// DASS21Result holds the three doubled subscale scores (0..42 each)
// with their severities, narrative and advice.
type DASS21Result struct {
	DepressionScore int
	AnxietyScore    int
	StressScore     int
	DepressionLevel Severity
	AnxietyLevel    Severity
	StressLevel     Severity
	Analysis        string
	Recommendations []string
}

func ClassifyDepression(score int) Severity {
	return classify(score, depressionCutoffs, SeverityExtremelySevere)
}

func ClassifyAnxiety(score int) Severity {
	return classify(score, anxietyCutoffs, SeverityExtremelySevere)
}

func ClassifyStress(score int) Severity {
	return classify(score, stressCutoffs, SeverityExtremelySevere)
}

// ScoreDASS21 scores a complete DASS-21 response set.
func ScoreDASS21(responses ResponseSet) (*DASS21Result, error) {
	if err := responses.Validate(DASS21Questions); err != nil {
		return nil, err
	}

	res := &DASS21Result{
		DepressionScore: responses.sum(depressionItems) * 2,
		AnxietyScore:    responses.sum(anxietyItems) * 2,
		StressScore:     responses.sum(stressItems) * 2,
	}
	res.DepressionLevel = ClassifyDepression(res.DepressionScore)
	res.AnxietyLevel = ClassifyAnxiety(res.AnxietyScore)
	res.StressLevel = ClassifyStress(res.StressScore)
	res.Analysis = DASS21Analysis(res.DepressionLevel, res.AnxietyLevel, res.StressLevel)
	res.Recommendations = DASS21Recommendations(res.DepressionLevel, res.AnxietyLevel, res.StressLevel)
	return res, nil
}

// Overall returns the most severe of the three subscale levels.
func (r *DASS21Result) Overall() Severity {
	worst := r.DepressionLevel
	for _, l := range []Severity{r.AnxietyLevel, r.StressLevel} {
		if rank(l) > rank(worst) {
			worst = l
		}
	}
	return worst
}

func rank(s Severity) int {
	switch s {
	case SeverityNormal, SeverityMinimal:
		return 0
	case SeverityMild:
		return 1
	case SeverityModerate:
		return 2
	case SeverityModeratelySevere:
		return 3
	case SeveritySevere:
		return 4
	case SeverityExtremelySevere:
		return 5
	}
	return -1
}
