// Package progress implements the user-progress tracker: a single owned
// aggregate mutated through update operations, with badge re-evaluation
// after every change and best-effort persistence.
package progress

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/celestial/celestial-chronicles/internal/catalog"
	"github.com/celestial/celestial-chronicles/internal/model"
	"github.com/celestial/celestial-chronicles/internal/progress/store"
)

// Point values for each update operation. Badge awards add a flat bonus per
// badge on top of the triggering action's own points.
const (
	pointsViewEvent          = 10
	pointsCompleteCollection = 100
	pointsFirstBirthdate     = 25
	pointsFirstLocation      = 15
	pointsSolarInteraction   = 5
	pointsUpcomingView       = 2
	pointsBadgeAward         = 50
)

// Tracker owns one UserProgress aggregate. All update operations are
// read-modify-write under a mutex, followed by badge evaluation and a
// best-effort persist; a persist failure loses only that update.
type Tracker struct {
	st  store.Store
	log zerolog.Logger
	now func() time.Time

	mu sync.Mutex
	p  model.UserProgress
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source. Tests use this for streak scenarios.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New creates a Tracker over the given store. Call Load before any update.
func New(st store.Store, log zerolog.Logger, opts ...Option) *Tracker {
	t := &Tracker{st: st, log: log, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func defaultProgress() model.UserProgress {
	return model.UserProgress{
		EventsViewed:         []string{},
		CollectionsCompleted: []string{},
		Badges:               []model.Badge{},
	}
}

// normalize replaces nil slices left by partial or legacy payloads so every
// field has a usable default.
func normalize(p *model.UserProgress) {
	if p.EventsViewed == nil {
		p.EventsViewed = []string{}
	}
	if p.CollectionsCompleted == nil {
		p.CollectionsCompleted = []string{}
	}
	if p.Badges == nil {
		p.Badges = []model.Badge{}
	}
	if p.TotalPoints < 0 {
		p.TotalPoints = 0
	}
}

// Load reads the persisted aggregate, applies defaults for anything missing
// or unparsable, runs the once-per-start daily-visit check, re-evaluates the
// full badge set, and persists. It never fails startup on bad state.
func (t *Tracker) Load(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	saved, err := t.st.Load(ctx, store.StorageKey)
	switch {
	case err == nil:
		t.p = *saved
	case errors.Is(err, model.ErrNotFound):
		t.p = defaultProgress()
	default:
		// Malformed state degrades to defaults rather than blocking startup.
		t.log.Warn().Err(err).Msg("progress record unreadable, starting from defaults")
		t.p = defaultProgress()
	}
	normalize(&t.p)

	t.applyDailyVisit()
	t.awardBadges()
	t.persist(ctx)
	return nil
}

// applyDailyVisit runs exactly once per load. Same calendar day: no-op.
// Visit yesterday: streak extends. Anything else (gap or first run): streak
// resets to 1. LastVisit always moves to now.
func (t *Tracker) applyDailyVisit() {
	now := t.now().UTC()
	last := t.p.DailyVisits.LastVisit.UTC()

	if sameDay(now, last) {
		return
	}
	if sameDay(now.AddDate(0, 0, -1), last) {
		t.p.DailyVisits.Streak++
	} else {
		t.p.DailyVisits.Streak = 1
	}
	t.p.DailyVisits.LastVisit = now
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Progress returns a snapshot copy of the aggregate.
func (t *Tracker) Progress() model.UserProgress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.p.Clone()
}

// ViewEvent records an event view. Idempotent per event id.
func (t *Tracker) ViewEvent(ctx context.Context, eventID string) model.UserProgress {
	return t.update(ctx, func(p *model.UserProgress) {
		if p.HasViewed(eventID) {
			return
		}
		p.EventsViewed = append(p.EventsViewed, eventID)
		p.TotalPoints += pointsViewEvent
	})
}

// CompleteCollection records a completed collection. Idempotent per id.
func (t *Tracker) CompleteCollection(ctx context.Context, collectionID string) model.UserProgress {
	return t.update(ctx, func(p *model.UserProgress) {
		if p.HasCompleted(collectionID) {
			return
		}
		p.CollectionsCompleted = append(p.CollectionsCompleted, collectionID)
		p.TotalPoints += pointsCompleteCollection
	})
}

// SetBirthdate overwrites the birthdate. The point bonus is granted only the
// first time a birthdate is ever set.
func (t *Tracker) SetBirthdate(ctx context.Context, birthdate time.Time) model.UserProgress {
	return t.update(ctx, func(p *model.UserProgress) {
		if p.Birthdate == nil {
			p.TotalPoints += pointsFirstBirthdate
		}
		b := birthdate
		p.Birthdate = &b
	})
}

// SetLocation overwrites the location, with the same one-time-bonus pattern.
func (t *Tracker) SetLocation(ctx context.Context, loc model.Location) model.UserProgress {
	return t.update(ctx, func(p *model.UserProgress) {
		if p.Location == nil {
			p.TotalPoints += pointsFirstLocation
		}
		l := loc
		p.Location = &l
	})
}

// IncrementSolarSystemInteractions bumps the 3D interaction counter.
func (t *Tracker) IncrementSolarSystemInteractions(ctx context.Context) model.UserProgress {
	return t.update(ctx, func(p *model.UserProgress) {
		p.SolarSystemInteractions++
		p.TotalPoints += pointsSolarInteraction
	})
}

// IncrementUpcomingViews bumps the upcoming-events view counter.
func (t *Tracker) IncrementUpcomingViews(ctx context.Context) model.UserProgress {
	return t.update(ctx, func(p *model.UserProgress) {
		p.UpcomingViews++
		p.TotalPoints += pointsUpcomingView
	})
}

// update applies a mutation, re-evaluates badges, persists, and returns a
// snapshot of the new state.
func (t *Tracker) update(ctx context.Context, mutate func(*model.UserProgress)) model.UserProgress {
	t.mu.Lock()
	defer t.mu.Unlock()

	mutate(&t.p)
	t.awardBadges()
	t.persist(ctx)
	return t.p.Clone()
}

// awardBadges grants every not-yet-held badge whose condition now holds, in
// catalog order, as one batch. Each award adds the flat badge bonus.
func (t *Tracker) awardBadges() {
	for _, b := range catalog.Badges {
		if t.p.HasBadge(b.ID) {
			continue
		}
		if !catalog.CheckCondition(b.Condition, &t.p) {
			continue
		}
		earned := b
		at := t.now().UTC()
		earned.EarnedAt = &at
		t.p.Badges = append(t.p.Badges, earned)
		t.p.TotalPoints += pointsBadgeAward
		t.log.Info().Str("badge", b.ID).Msg("badge earned")
	}
}

// persist is fire-and-forget: a failure loses at most this update.
func (t *Tracker) persist(ctx context.Context) {
	if err := t.st.Save(ctx, store.StorageKey, &t.p); err != nil {
		t.log.Error().Err(err).Msg("failed to persist progress")
	}
}
