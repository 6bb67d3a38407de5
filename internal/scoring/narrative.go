package scoring

const dass21AnalysisLead = "بر اساس تجزیه و تحلیل پاسخ‌های شما: "

const (
	dass21AllNormal = "نتایج شما در محدوده طبیعی قرار دارد. شما وضعیت روحی مناسبی دارید."
	dass21Severe    = "نتایج نشان می‌دهد که شما در حال حاضر با چالش‌های قابل توجه سلامت روان مواجه هستید. توصیه می‌شود با یک متخصص مشورت کنید."
	dass21Attention = "نتایج نشان می‌دهد که شما نیاز به توجه بیشتر به سلامت روان خود دارید. با اعمال تکنیک‌های مدیریت استرس می‌توانید بهبود یابید."
)

var phq9Analyses = map[Severity]string{
	SeverityMinimal:          "علائم افسردگی شما در سطح حداقل است. این وضعیت طبیعی محسوب می‌شود.",
	SeverityMild:             "علائم افسردگی خفیفی دارید. با تکنیک‌های خودمراقبتی می‌توانید این وضعیت را بهبود بخشید.",
	SeverityModerate:         "علائم افسردگی متوسطی دارید. توصیه می‌شود با یک مشاور یا روان‌شناس صحبت کنید.",
	SeverityModeratelySevere: "علائم افسردگی نسبتاً شدیدی دارید. مراجعه به متخصص ضروری است.",
	SeveritySevere:           "علائم افسردگی شدیدی دارید. فوراً با یک روان‌پزشک یا متخصص سلامت روان تماس بگیرید.",
}

// DASS21Analysis picks one of three fixed narratives: all subscales normal,
// any subscale severe or extremely severe, or anything in between.
func DASS21Analysis(depression, anxiety, stress Severity) string {
	levels := []Severity{depression, anxiety, stress}
	if allNormal(levels) {
		return dass21AnalysisLead + dass21AllNormal
	}
	for _, l := range levels {
		if l == SeveritySevere || l == SeverityExtremelySevere {
			return dass21AnalysisLead + dass21Severe
		}
	}
	return dass21AnalysisLead + dass21Attention
}

// PHQ9Analysis returns the narrative for a PHQ-9 severity. Unknown labels
// get the severe text.
func PHQ9Analysis(severity Severity) string {
	if s, ok := phq9Analyses[severity]; ok {
		return s
	}
	return phq9Analyses[SeveritySevere]
}

func allNormal(levels []Severity) bool {
	for _, l := range levels {
		if l != SeverityNormal {
			return false
		}
	}
	return true
}
