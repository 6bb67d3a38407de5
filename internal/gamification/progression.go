// Package gamification derives levels, badges and journal streaks.
package gamification

const (
	XPPerLevel = 100

	BadgeNovice = "Novice"
	BadgeExpert = "Expert"
)

type badgeRule struct {
	name  string
	minXP int
}

// badgeRules are checked independently; a user holds every badge whose
// threshold they have reached.
var badgeRules = []badgeRule{
	{BadgeNovice, 100},
	{BadgeExpert, 500},
}

// Progression is the derived view of a user's lifetime experience.
type Progression struct {
	XP          int      `json:"xp"`
	Level       int      `json:"level"`
	Badges      []string `json:"badges"`
	NextLevelXP int      `json:"nextLevelXp"`
}

// LevelAndBadges returns floor(xp/100)+1 and the cumulative badge list.
// Negative xp is treated as zero.
func LevelAndBadges(xp int) (int, []string) {
	if xp < 0 {
		xp = 0
	}
	badges := []string{}
	for _, r := range badgeRules {
		if xp >= r.minXP {
			badges = append(badges, r.name)
		}
	}
	return xp/XPPerLevel + 1, badges
}

// Compute rebuilds the whole progression from xp.
func Compute(xp int) Progression {
	if xp < 0 {
		xp = 0
	}
	level, badges := LevelAndBadges(xp)
	return Progression{
		XP:          xp,
		Level:       level,
		Badges:      badges,
		NextLevelXP: level * XPPerLevel,
	}
}

// BadgeCatalog lists every badge that can be earned, lowest threshold first.
func BadgeCatalog() []string {
	out := make([]string, len(badgeRules))
	for i, r := range badgeRules {
		out[i] = r.name
	}
	return out
}
