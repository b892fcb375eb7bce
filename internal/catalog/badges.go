package catalog

import "github.com/celestial/celestial-chronicles/internal/model"

// Badge condition keys. Evaluation happens in CheckCondition; the catalog
// order below is the award order and must stay stable so point totals are
// deterministic when several badges unlock in one update.
const (
	condViewEvent1         = "view_event_1"
	condViewEvents50       = "view_events_50"
	condViewYears10        = "view_years_10"
	condCompleteCollection = "complete_collection_1"
	condCompleteThree      = "complete_collections_3"
	condApolloMissions     = "complete_collection_apollo-missions"
	condMarsExploration    = "complete_collection_mars-exploration"
	condDailyVisits3       = "daily_visits_3"
	condDailyVisits7       = "daily_visits_7"
	condViewUpcoming1      = "view_upcoming_1"
	condInteract3D10       = "interact_3d_10"
	condCreateTimeline     = "create_timeline"
)

// Badges is the static achievement catalog.
var Badges = []model.Badge{
	{ID: "first-step", Name: "First Step", Description: "View your first space event.", Icon: "🚀", Condition: condViewEvent1},
	{ID: "historian", Name: "Space Historian", Description: "View 50 different space events.", Icon: "📚", Condition: condViewEvents50},
	{ID: "time-traveler", Name: "Time Traveler", Description: "Explore events from 10 different years.", Icon: "⏰", Condition: condViewYears10},
	{ID: "cosmic-curator", Name: "Cosmic Curator", Description: "Complete your first collection.", Icon: "🏆", Condition: condCompleteCollection},
	{ID: "collection-master", Name: "Collection Master", Description: "Complete 3 different collections.", Icon: "👑", Condition: condCompleteThree},
	{ID: "apollo-enthusiast", Name: "Apollo Enthusiast", Description: "Complete the \"Apollo Missions\" collection.", Icon: "🌙", Condition: condApolloMissions},
	{ID: "mars-explorer", Name: "Mars Explorer", Description: "Complete the \"Mars Exploration\" collection.", Icon: "🔴", Condition: condMarsExploration},
	{ID: "frequent-flyer", Name: "Frequent Flyer", Description: "Visit the app for 3 consecutive days.", Icon: "📅", Condition: condDailyVisits3},
	{ID: "dedicated-explorer", Name: "Dedicated Explorer", Description: "Visit the app for 7 consecutive days.", Icon: "🗓️", Condition: condDailyVisits7},
	{ID: "future-gazer", Name: "Future Gazer", Description: "Check the upcoming events.", Icon: "🔮", Condition: condViewUpcoming1},
	{ID: "orbital-mechanic", Name: "Orbital Mechanic", Description: "Interact with the 3D solar system 10 times.", Icon: "🪐", Condition: condInteract3D10},
	{ID: "its-full-of-stars", Name: "It's Full of Stars!", Description: "Create your personal cosmic timeline.", Icon: "✨", Condition: condCreateTimeline},
}

// BadgeByID resolves a badge catalog entry by id.
func BadgeByID(id string) (model.Badge, bool) {
	for _, b := range Badges {
		if b.ID == id {
			return b, true
		}
	}
	return model.Badge{}, false
}

// CheckCondition evaluates a badge condition key against a progress snapshot.
// Pure: unknown keys are false. view_years_10 counts distinct years among the
// viewed ids that resolve through the curated event catalog.
func CheckCondition(condition string, p *model.UserProgress) bool {
	switch condition {
	case condViewEvent1:
		return len(p.EventsViewed) >= 1
	case condViewEvents50:
		return len(p.EventsViewed) >= 50
	case condViewYears10:
		years := make(map[int]struct{})
		for _, id := range p.EventsViewed {
			if e, ok := EventByID(id); ok {
				years[e.Date.Year] = struct{}{}
			}
		}
		return len(years) >= 10
	case condCompleteCollection:
		return len(p.CollectionsCompleted) >= 1
	case condCompleteThree:
		return len(p.CollectionsCompleted) >= 3
	case condApolloMissions:
		return p.HasCompleted("apollo-missions")
	case condMarsExploration:
		return p.HasCompleted("mars-exploration")
	case condDailyVisits3:
		return p.DailyVisits.Streak >= 3
	case condDailyVisits7:
		return p.DailyVisits.Streak >= 7
	case condViewUpcoming1:
		return p.UpcomingViews >= 1
	case condInteract3D10:
		return p.SolarSystemInteractions >= 10
	case condCreateTimeline:
		return p.Birthdate != nil
	default:
		return false
	}
}
