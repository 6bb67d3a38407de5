package scoring

var (
	depressionAdvice = []string{
		"تمرین روزانه تنفس عمیق و مدیتیشن",
		"حفظ برنامه خواب منظم (7-8 ساعت)",
		"فعالیت بدنی منظم، حداقل 30 دقیقه در روز",
	}
	anxietyAdvice = []string{
		"تکنیک‌های آرام‌سازی عضلانی",
		"محدود کردن کافئین و مواد محرک",
		"تمرین ذهن‌آگاهی (Mindfulness)",
	}
	stressAdvice = []string{
		"مدیریت زمان و اولویت‌بندی کارها",
		"ایجاد تعادل بین کار و زندگی",
		"استفاده از تکنیک‌های حل مسئله",
	}
	maintainAdvice = []string{
		"ادامه سبک زندگی سالم فعلی",
		"حفظ روابط اجتماعی مثبت",
		"ارزیابی دوره‌ای سلامت روان",
	}
)

var (
	phq9MinimalAdvice = []string{
		"ادامه فعالیت‌های مثبت فعلی",
		"حفظ روابط اجتماعی",
		"ورزش منظم",
	}
	phq9MildAdvice = []string{
		"افزایش فعالیت‌های لذت‌بخش",
		"برقراری ارتباط با دوستان و خانواده",
		"تمرین ذهن‌آگاهی",
		"نظم در خواب و تغذیه",
	}
	phq9ModerateAdvice = []string{
		"مشورت با روان‌شناس یا مشاور",
		"شرکت در گروه‌های حمایتی",
		"تمرین تکنیک‌های درمان شناختی-رفتاری",
		"نظارت بر علائم",
	}
	phq9UrgentAdvice = []string{
		"مراجعه فوری به متخصص",
		"درنظرگیری درمان دارویی",
		"حمایت خانوادگی",
		"مراقبت ویژه از خود",
	}
)

// DASS21Recommendations concatenates the advice of every non-normal subscale
// in depression, anxiety, stress order and keeps the first five. When all
// three are normal the maintenance list replaces them.
func DASS21Recommendations(depression, anxiety, stress Severity) []string {
	if allNormal([]Severity{depression, anxiety, stress}) {
		return clone(maintainAdvice)
	}

	var out []string
	if depression != SeverityNormal {
		out = append(out, depressionAdvice...)
	}
	if anxiety != SeverityNormal {
		out = append(out, anxietyAdvice...)
	}
	if stress != SeverityNormal {
		out = append(out, stressAdvice...)
	}
	return capRecommendations(out)
}

func PHQ9Recommendations(severity Severity) []string {
	switch severity {
	case SeverityMinimal:
		return clone(phq9MinimalAdvice)
	case SeverityMild:
		return clone(phq9MildAdvice)
	case SeverityModerate:
		return clone(phq9ModerateAdvice)
	default:
		return clone(phq9UrgentAdvice)
	}
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
