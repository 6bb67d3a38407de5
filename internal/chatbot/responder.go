// Package chatbot is a single-turn keyword responder for Persian chat messages.
package chatbot

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

type Topic string

const (
	TopicGreeting Topic = "greeting"
	TopicSad      Topic = "sad"
	TopicPositive Topic = "positive"
	TopicAnxious  Topic = "anxious"
	TopicAcademic Topic = "academic"
	TopicSleep    Topic = "sleep"
	TopicFallback Topic = "fallback"
)

type bucket struct {
	topic     Topic
	keywords  []string
	templates []string
}

// buckets are tested in order; the first keyword hit wins.
var buckets = []bucket{
	{
		topic:    TopicGreeting,
		keywords: []string{"سلام", "درود", "hi", "hello"},
		templates: []string{
			"امیدوارم حال شما خوب باشد. چطور می‌توانم کمکتان کنم؟",
			"من اینجا هستم تا گوش دهم. امروز چطور احساس می‌کنید؟",
			"خوشحالم که اینجا هستید. چه چیزی در ذهنتان است؟",
		},
	},
	{
		topic:    TopicSad,
		keywords: []string{"غمگین", "ناراحت", "افسرده", "بد"},
		templates: []string{
			"متأسفم که این‌طور احساس می‌کنید. این احساسات گاهی طبیعی هستند. می‌خواهید درباره‌اش صحبت کنیم؟",
			"درک می‌کنم که حال شما خوب نیست. چه چیزی باعث این احساس شده؟",
			"احساسات شما مهم هستند. آیا امروز اتفاق خاصی افتاده؟",
		},
	},
	{
		topic:    TopicPositive,
		keywords: []string{"خوب", "عالی", "خوشحال", "شاد"},
		templates: []string{
			"چه خبر خوبی! خوشحالم که حالتان خوب است. این انرژی مثبت را حفظ کنید.",
			"فوق‌العاده! چه چیزی باعث این حس خوب شده؟",
			"عالی است! این لحظات خوب را قدر بدانید.",
		},
	},
	{
		topic:    TopicAnxious,
		keywords: []string{"نگران", "اضطراب", "ترس", "استرس"},
		templates: []string{
			"اضطراب و نگرانی بخش طبیعی زندگی هستند. بیایید روی تکنیک‌های تنفس کار کنیم. ۴ ثانیه نفس بکشید، ۷ ثانیه نگه دارید، ۸ ثانیه آرام بدهید.",
			"درک می‌کنم که احساس نگرانی دارید. گاهی کمک می‌کند که روی چیزهایی که می‌توانید کنترل کنید تمرکز کنید.",
			"استرس می‌تواند سخت باشد. آیا تا الان تکنیک‌های آرام‌سازی امتحان کرده‌اید؟",
		},
	},
	{
		topic:    TopicAcademic,
		keywords: []string{"درس", "امتحان", "کار", "دانشگاه", "مطالعه"},
		templates: []string{
			"فشار تحصیلی و کاری چالش بزرگی است. مهم این است که تعادل داشته باشید. برنامه‌ریزی و استراحت منظم کمک می‌کند.",
			"درک می‌کنم که فشار درسی سنگین است. آیا زمان کافی برای استراحت و تفریح در نظر گرفته‌اید؟",
			"موفقیت تحصیلی مهم است، اما سلامتی شما مهم‌تر است. چگونه از خودتان مراقبت می‌کنید؟",
		},
	},
	{
		topic:    TopicSleep,
		keywords: []string{"خواب", "بیدار", "خستگی"},
		templates: []string{
			"خواب خوب برای سلامت روان ضروری است. آیا قبل از خواب از گوشی و صفحه‌نمایش دوری می‌کنید؟",
			"مشکلات خواب می‌تواند روی حال و احوال تأثیر بگذارد. آیا برنامه ثابت خواب دارید؟",
			"برای خواب بهتر، می‌توانید قبل از خواب مدیتیشن یا تنفس عمیق انجام دهید.",
		},
	},
}

var fallbackTemplates = []string{
	"درک می‌کنم. گاهی صحبت کردن کمک می‌کند. چه چیز دیگری در ذهنتان است؟",
	"ممنون که با من در میان گذاشتید. چگونه می‌توانم بهتر کمکتان کنم؟",
	"احساسات شما مهم هستند. آیا تکنیک‌های آرام‌سازی یاد گرفته‌اید؟",
	"هر چه احساس می‌کنید طبیعی است. مهم این است که مراقب خودتان باشید.",
	"اگر احساس کردید نیاز به کمک حرفه‌ای دارید، لطفاً با مشاور یا روان‌شناس صحبت کنید.",
}

// Reply is the responder's answer together with the matched topic.
type Reply struct {
	Topic Topic
	Text  string
}

// Responder picks a canned reply for a message. It keeps no conversation
// state; the only mutable field is the random source.
type Responder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewResponder uses rng for template selection. A nil rng is seeded from the clock.
func NewResponder(rng *rand.Rand) *Responder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Responder{rng: rng}
}

// NewSeededResponder is NewResponder with a fixed seed; seed 0 means the clock.
func NewSeededResponder(seed int64) *Responder {
	if seed == 0 {
		return NewResponder(nil)
	}
	return NewResponder(rand.New(rand.NewSource(seed)))
}

// Classify returns the first topic whose keyword occurs in message.
func Classify(message string) Topic {
	lower := strings.ToLower(message)
	for _, b := range buckets {
		for _, kw := range b.keywords {
			if strings.Contains(lower, kw) {
				return b.topic
			}
		}
	}
	return TopicFallback
}

// Respond answers message. Greetings are personalized with the "name" or
// "nickname" entry of memory when present.
func (r *Responder) Respond(message string, memory map[string]interface{}) Reply {
	topic := Classify(message)
	text := r.pick(Templates(topic))
	if topic == TopicGreeting {
		greeting := "سلام!"
		if name := nickname(memory); name != "" {
			greeting = fmt.Sprintf("سلام %s!", name)
		}
		text = greeting + " " + text
	}
	return Reply{Topic: topic, Text: text}
}

// Templates returns the reply templates of a topic.
func Templates(topic Topic) []string {
	for _, b := range buckets {
		if b.topic == topic {
			return b.templates
		}
	}
	return fallbackTemplates
}

func (r *Responder) pick(templates []string) string {
	r.mu.Lock()
	i := r.rng.Intn(len(templates))
	r.mu.Unlock()
	return templates[i]
}

func nickname(memory map[string]interface{}) string {
	for _, key := range []string{"name", "nickname"} {
		if v, ok := memory[key]; ok && v != nil {
			if s := strings.TrimSpace(fmt.Sprint(v)); s != "" {
				return s
			}
		}
	}
	return ""
}
