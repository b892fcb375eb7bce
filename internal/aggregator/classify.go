package aggregator

import (
	"strings"

	"github.com/celestial/celestial-chronicles/internal/model"
)

// categoryRules are evaluated top to bottom against the joined keyword text;
// the first matching keyword wins. Order encodes the fixed priority
// launch > landing > mission > spacewalk > milestone > achievement.
var categoryRules = []struct {
	keyword  string
	category model.EventCategory
}{
	{"launch", model.CategoryLaunch},
	{"rocket", model.CategoryLaunch},
	{"landing", model.CategoryLanding},
	{"touchdown", model.CategoryLanding},
	{"mission", model.CategoryMission},
	{"expedition", model.CategoryMission},
	{"spacewalk", model.CategorySpacewalk},
	{"eva", model.CategorySpacewalk},
	{"milestone", model.CategoryMilestone},
	{"first", model.CategoryMilestone},
	{"achievement", model.CategoryAchievement},
	{"record", model.CategoryAchievement},
}

// celestialBodies are matched by case-insensitive substring, in order.
var celestialBodies = []string{
	"mars", "moon", "jupiter", "saturn", "venus", "mercury",
	"earth", "sun", "pluto", "neptune", "uranus",
}

// categorizeKeywords infers an event category from free-text keyword
// metadata. Defaults to discovery when nothing matches.
func categorizeKeywords(keywords []string) model.EventCategory {
	if len(keywords) == 0 {
		return model.CategoryDiscovery
	}
	joined := strings.ToLower(strings.Join(keywords, " "))
	for _, r := range categoryRules {
		if strings.Contains(joined, r.keyword) {
			return r.category
		}
	}
	return model.CategoryDiscovery
}

// relatedBody extracts the first celestial body mentioned in the keywords,
// capitalized for display. Empty when none matches.
func relatedBody(keywords []string) string {
	if len(keywords) == 0 {
		return ""
	}
	joined := strings.ToLower(strings.Join(keywords, " "))
	for _, body := range celestialBodies {
		if strings.Contains(joined, body) {
			return strings.ToUpper(body[:1]) + body[1:]
		}
	}
	return ""
}
