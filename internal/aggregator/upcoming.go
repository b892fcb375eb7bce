package aggregator

import (
	"github.com/celestial/celestial-chronicles/internal/model"
)

// GetUpcomingEvents returns a small synthesized list of near-future
// celestial events, deterministic for a given clock reading. No network
// fetch is involved; the location only tunes visibility notes. Results are
// ordered by date ascending.
func (s *Service) GetUpcomingEvents(loc *model.Location) []model.UpcomingEvent {
	now := s.now()

	events := []model.UpcomingEvent{
		{
			ID:          "upcoming-iss-flyover",
			Name:        "International Space Station Flyover",
			Description: "The ISS will be visible in the night sky",
			Date:        now.AddDate(0, 0, 2),
			Type:        model.UpcomingConjunction,
			Visibility: &model.Visibility{
				BestTime:  "Evening twilight",
				Direction: "West to East",
			},
		},
		{
			ID:          "upcoming-moon-jupiter",
			Name:        "Moon-Jupiter Conjunction",
			Description: "The waxing Moon passes within two degrees of Jupiter",
			Date:        now.AddDate(0, 0, 9),
			Type:        model.UpcomingConjunction,
			Visibility: &model.Visibility{
				BestTime:  "Late evening",
				Direction: "Southeast",
				Magnitude: "-2.4",
			},
		},
		{
			ID:          "upcoming-meteor-peak",
			Name:        "Meteor Shower Peak",
			Description: "Up to 20 meteors per hour radiating from the northern sky",
			Date:        now.AddDate(0, 0, 16),
			Type:        model.UpcomingMeteorShower,
			Visibility: &model.Visibility{
				BestTime:  "After midnight",
				Direction: "Northeast",
			},
		},
	}

	if loc != nil && loc.City != "" {
		for i := range events {
			events[i].Notes = "Visibility estimated for " + loc.City
		}
	}
	return events
}
