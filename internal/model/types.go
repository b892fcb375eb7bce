package model

import "time"

// EventCategory classifies a historical space event.
type EventCategory string

const (
	CategoryLaunch      EventCategory = "launch"
	CategoryDiscovery   EventCategory = "discovery"
	CategoryLanding     EventCategory = "landing"
	CategoryMission     EventCategory = "mission"
	CategoryMilestone   EventCategory = "milestone"
	CategorySpacewalk   EventCategory = "spacewalk"
	CategoryAchievement EventCategory = "achievement"
)

// EventDate is the calendar date an event happened on.
type EventDate struct {
	Month int `json:"month"`
	Day   int `json:"day"`
	Year  int `json:"year"`
}

// SpaceEvent is an immutable record of a historical space event.
// Identity is ID; events from different sources carry disjoint ID prefixes.
type SpaceEvent struct {
	ID           string        `json:"id"`
	Date         EventDate     `json:"date"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Category     EventCategory `json:"category"`
	ImageURL     string        `json:"imageUrl"`
	Significance string        `json:"significance"`
	RelatedBody  string        `json:"relatedBody,omitempty"`
	Collection   string        `json:"collection,omitempty"`
	NASAID       string        `json:"nasaId,omitempty"`
}

// UpcomingEventType classifies a near-future celestial event.
type UpcomingEventType string

const (
	UpcomingMeteorShower UpcomingEventType = "meteor_shower"
	UpcomingEclipse      UpcomingEventType = "eclipse"
	UpcomingConjunction  UpcomingEventType = "conjunction"
	UpcomingTransit      UpcomingEventType = "transit"
	UpcomingLaunch       UpcomingEventType = "launch"
)

// Visibility describes when and where an upcoming event is best observed.
type Visibility struct {
	BestTime  string `json:"bestTime"`
	Direction string `json:"direction"`
	Magnitude string `json:"magnitude,omitempty"`
}

// UpcomingEvent is a near-future celestial event shown to the user.
type UpcomingEvent struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Date        time.Time         `json:"date"`
	Type        UpcomingEventType `json:"type"`
	Visibility  *Visibility       `json:"visibility,omitempty"`
	Notes       string            `json:"notes,omitempty"`
}

// Collection is a curated named group of event ids.
type Collection struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Color       string   `json:"color"`
	EventIDs    []string `json:"eventIds"`
}

// Badge is an achievement unlocked by a boolean condition over user progress.
// EarnedAt is set only on badges held inside a UserProgress record.
type Badge struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Condition   string     `json:"condition"`
	EarnedAt    *time.Time `json:"earnedAt,omitempty"`
}

// Location is an optional user location used for sky-visibility hints.
type Location struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	City string  `json:"city"`
}

// DailyVisits tracks the consecutive-day visit streak.
type DailyVisits struct {
	Streak    int       `json:"streak"`
	LastVisit time.Time `json:"lastVisit"`
}

// UserProgress is the single persisted progress aggregate for one installation.
type UserProgress struct {
	TotalPoints             int         `json:"totalPoints"`
	EventsViewed            []string    `json:"eventsViewed"`
	CollectionsCompleted    []string    `json:"collectionsCompleted"`
	Badges                  []Badge     `json:"badges"`
	Birthdate               *time.Time  `json:"birthdate,omitempty"`
	Location                *Location   `json:"location,omitempty"`
	SolarSystemInteractions int         `json:"solarSystemInteractions"`
	UpcomingViews           int         `json:"upcomingViews"`
	DailyVisits             DailyVisits `json:"dailyVisits"`
}

// HasViewed reports whether the event id is already in EventsViewed.
func (p *UserProgress) HasViewed(eventID string) bool {
	for _, id := range p.EventsViewed {
		if id == eventID {
			return true
		}
	}
	return false
}

// HasCompleted reports whether the collection id is already completed.
func (p *UserProgress) HasCompleted(collectionID string) bool {
	for _, id := range p.CollectionsCompleted {
		if id == collectionID {
			return true
		}
	}
	return false
}

// HasBadge reports whether the badge id has already been earned.
func (p *UserProgress) HasBadge(badgeID string) bool {
	for _, b := range p.Badges {
		if b.ID == badgeID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot mutate tracked state.
func (p *UserProgress) Clone() UserProgress {
	cp := *p
	cp.EventsViewed = append([]string(nil), p.EventsViewed...)
	cp.CollectionsCompleted = append([]string(nil), p.CollectionsCompleted...)
	cp.Badges = append([]Badge(nil), p.Badges...)
	if p.Birthdate != nil {
		b := *p.Birthdate
		cp.Birthdate = &b
	}
	if p.Location != nil {
		l := *p.Location
		cp.Location = &l
	}
	return cp
}
