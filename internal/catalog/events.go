// Package catalog holds the static curated data the application ships with:
// notable space events, themed collections, and the achievement badge set.
package catalog

import "github.com/celestial/celestial-chronicles/internal/model"

// Events is the curated set of notable space-history events. Aggregated API
// results supplement this list; it is authoritative for collection membership
// and for resolving an event id to its year during badge evaluation.
var Events = []model.SpaceEvent{
	{
		ID:           "spirit-landing",
		Date:         model.EventDate{Month: 1, Day: 4, Year: 2004},
		Title:        "Spirit Rover Lands on Mars",
		Description:  "NASA's Mars Exploration Rover, Spirit, successfully lands in Gusev Crater on Mars to begin its 90-sol mission of exploring the planet's geology and searching for signs of past water activity.",
		Category:     model.CategoryLanding,
		ImageURL:     "https://images.pexels.com/photos/220201/pexels-photo-220201.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Significance: "One of two highly successful rovers that vastly exceeded their planned mission durations, providing a wealth of data about the Martian environment.",
		RelatedBody:  "Mars",
		Collection:   "mars-exploration",
	},
	{
		ID:           "challenger-disaster",
		Date:         model.EventDate{Month: 1, Day: 28, Year: 1986},
		Title:        "Space Shuttle Challenger Disaster",
		Description:  "The Space Shuttle Challenger broke apart 73 seconds into its flight, leading to the deaths of its seven crew members, including schoolteacher Christa McAuliffe.",
		Category:     model.CategoryMilestone,
		ImageURL:     "https://images.pexels.com/photos/87651/earth-blue-planet-globe-planet-87651.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Significance: "A tragic event that led to a nearly three-year hiatus in the shuttle program and significant changes in NASA's safety protocols and decision-making processes.",
		RelatedBody:  "Earth",
	},
	{
		ID:           "mariner-4-flyby",
		Date:         model.EventDate{Month: 2, Day: 17, Year: 1965},
		Title:        "Mariner 4's First Images of Mars",
		Description:  "Mariner 4 performed the first successful flyby of the planet Mars, returning the first close-up pictures of another planet from deep space.",
		Category:     model.CategoryDiscovery,
		ImageURL:     "https://images.pexels.com/photos/73910/mars-mars-rover-space-travel-robot-73910.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Significance: "The images revealed a cratered, moon-like surface, fundamentally changing scientific views of Mars at the time.",
		RelatedBody:  "Mars",
		Collection:   "mars-exploration",
	},
	{
		ID:           "perseverance-landing",
		Date:         model.EventDate{Month: 2, Day: 18, Year: 2021},
		Title:        "Perseverance Rover Lands on Mars",
		Description:  "NASA's Perseverance rover, along with the Ingenuity helicopter drone, successfully landed in Jezero Crater on Mars to seek signs of ancient life and collect samples for possible return to Earth.",
		Category:     model.CategoryLanding,
		ImageURL:     "https://images.pexels.com/photos/1252890/pexels-photo-1252890.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Significance: "Marked the first powered, controlled flight on another planet and began a new era of sample-caching for future return missions.",
		RelatedBody:  "Mars",
		Collection:   "mars-exploration",
	},
	{
		ID:           "first-spacewalk",
		Date:         model.EventDate{Month: 3, Day: 18, Year: 1965},
		Title:        "First Spacewalk by Alexei Leonov",
		Description:  "Soviet cosmonaut Alexei Leonov performed the first extravehicular activity (EVA), or spacewalk, in history, exiting the Voskhod 2 spacecraft for 12 minutes.",
		Category:     model.CategorySpacewalk,
		ImageURL:     "https://images.pexels.com/photos/2159/flight-sky-earth-space.jpg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Significance: "Demonstrated that humans could survive and work in the vacuum of space, a critical step for future missions and moon landings.",
		RelatedBody:  "Earth",
		Collection:   "space-firsts",
	},
	{
		ID:           "first-human-in-space",
		Date:         model.EventDate{Month: 4, Day: 12, Year: 1961},
		Title:        "Yuri Gagarin: First Human in Space",
		Description:  "Soviet cosmonaut Yuri Gagarin became the first human to journey into outer space, completing one orbit of Earth aboard the Vostok 1 spacecraft.",
		Category:     model.CategoryMilestone,
		ImageURL:     "https://images.pexels.com/photos/2156/sky-earth-space-working.jpg?auto=compress&cs=tinysrgb&w=800",
		Significance: "A monumental achievement in the Space Race, marking the dawn of human spaceflight.",
		RelatedBody:  "Earth",
		Collection:   "space-firsts",
	},
	{
		ID:           "hubble-launch",
		Date:         model.EventDate{Month: 4, Day: 24, Year: 1990},
		Title:        "Hubble Space Telescope Launch",
		Description:  "The Hubble Space Telescope was launched into low Earth orbit aboard the Space Shuttle Discovery. It has since become one of the most important scientific instruments ever built.",
		Category:     model.CategoryLaunch,
		ImageURL:     "https://images.pexels.com/photos/1169754/pexels-photo-1169754.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Significance: "Revolutionized modern astronomy by providing incredibly deep and clear views of the universe, leading to countless discoveries.",
		RelatedBody:  "Earth",
		Collection:   "great-observatories",
	},
	{
		ID:           "apollo-11",
		Date:         model.EventDate{Month: 7, Day: 20, Year: 1969},
		Title:        "Apollo 11 Moon Landing",
		Description:  "Neil Armstrong and Buzz Aldrin become the first humans to walk on the Moon, a pivotal moment in human history broadcast to a global audience.",
		Category:     model.CategoryLanding,
		ImageURL:     "https://images.pexels.com/photos/586063/pexels-photo-586063.jpeg?auto=compress&cs=tinysrgb&w=800",
		Significance: "First human landing on another celestial body, fulfilling a national goal and marking the peak of the Space Race.",
		RelatedBody:  "Moon",
		Collection:   "apollo-missions",
	},
}

// EventsByDate returns the curated events that happened on the given month/day.
func EventsByDate(month, day int) []model.SpaceEvent {
	var out []model.SpaceEvent
	for _, e := range Events {
		if e.Date.Month == month && e.Date.Day == day {
			out = append(out, e)
		}
	}
	return out
}

// EventByID resolves a curated event by id.
func EventByID(id string) (model.SpaceEvent, bool) {
	for _, e := range Events {
		if e.ID == id {
			return e, true
		}
	}
	return model.SpaceEvent{}, false
}
