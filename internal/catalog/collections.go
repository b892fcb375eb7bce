package catalog

import "github.com/celestial/celestial-chronicles/internal/model"

// Collections is the static set of themed event collections.
var Collections = []model.Collection{
	{
		ID:          "apollo-missions",
		Name:        "Apollo Missions",
		Description: "The historic journey that took humanity to the Moon.",
		ImageURL:    "https://images.pexels.com/photos/65704/pexels-photo-65704.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Color:       "from-yellow-500 to-orange-600",
		EventIDs:    []string{"apollo-11"},
	},
	{
		ID:          "women-in-space",
		Name:        "Women in Space",
		Description: "Celebrating the pioneering female astronauts and cosmonauts.",
		ImageURL:    "https://images.pexels.com/photos/87009/earth-galaxy-universe-9529.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Color:       "from-purple-500 to-pink-600",
		EventIDs:    []string{},
	},
	{
		ID:          "voyager-journey",
		Name:        "The Voyager Journey",
		Description: "The epic grand tour of our solar system and beyond.",
		ImageURL:    "https://images.pexels.com/photos/39561/solar-flare-sun-eruption-energy-39561.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Color:       "from-blue-500 to-cyan-600",
		EventIDs:    []string{},
	},
	{
		ID:          "mars-exploration",
		Name:        "Mars Exploration",
		Description: "Our robotic envoys on the Red Planet.",
		ImageURL:    "https://images.pexels.com/photos/73910/mars-mars-rover-space-travel-robot-73910.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Color:       "from-red-500 to-orange-600",
		EventIDs:    []string{"mariner-4-flyby", "spirit-landing", "perseverance-landing"},
	},
	{
		ID:          "great-observatories",
		Name:        "The Great Observatories",
		Description: "Our most powerful eyes on the universe.",
		ImageURL:    "https://images.pexels.com/photos/1169754/pexels-photo-1169754.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Color:       "from-indigo-500 to-purple-600",
		EventIDs:    []string{"hubble-launch"},
	},
	{
		ID:          "space-firsts",
		Name:        "Pioneering Firsts",
		Description: "The groundbreaking achievements that started it all.",
		ImageURL:    "https://images.pexels.com/photos/2159/flight-sky-earth-space.jpg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Color:       "from-green-500 to-teal-600",
		EventIDs:    []string{"first-human-in-space", "first-spacewalk"},
	},
}

// CollectionByID resolves a collection by id.
func CollectionByID(id string) (model.Collection, bool) {
	for _, c := range Collections {
		if c.ID == id {
			return c, true
		}
	}
	return model.Collection{}, false
}

// CollectionsByEventID returns every collection that contains the event id.
func CollectionsByEventID(eventID string) []model.Collection {
	var out []model.Collection
	for _, c := range Collections {
		for _, id := range c.EventIDs {
			if id == eventID {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// IsCollectionComplete reports whether every member event has been viewed.
// Collections with no members never complete.
func IsCollectionComplete(c model.Collection, p *model.UserProgress) bool {
	if len(c.EventIDs) == 0 {
		return false
	}
	for _, id := range c.EventIDs {
		if !p.HasViewed(id) {
			return false
		}
	}
	return true
}
