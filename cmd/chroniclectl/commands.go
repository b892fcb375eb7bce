package main

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/celestial/celestial-chronicles/internal/model"
)

func newAPIClient(baseURL string) *resty.Client {
	return resty.New().SetBaseURL(baseURL)
}

func runEvents(baseURL string, month, day int, out io.Writer) error {
	var events []model.SpaceEvent
	resp, err := newAPIClient(baseURL).R().
		SetQueryParam("month", strconv.Itoa(month)).
		SetQueryParam("day", strconv.Itoa(day)).
		SetResult(&events).
		Get("/api/events/historical")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("service returned %d: %s", resp.StatusCode(), resp.String())
	}
	if len(events) == 0 {
		fmt.Fprintf(out, "no events for %d/%d\n", month, day)
		return nil
	}
	for _, e := range events {
		fmt.Fprintf(out, "%s  [%s]  %s (%d)\n", e.ID, e.Category, e.Title, e.Date.Year)
	}
	return nil
}

func runUpcoming(baseURL string, out io.Writer) error {
	var events []model.UpcomingEvent
	resp, err := newAPIClient(baseURL).R().
		SetResult(&events).
		Get("/api/events/upcoming")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("service returned %d: %s", resp.StatusCode(), resp.String())
	}
	for _, e := range events {
		fmt.Fprintf(out, "%s  %s  %s\n", e.Date.Format("2006-01-02"), e.Type, e.Name)
	}
	return nil
}

func runProgressShow(baseURL string, out io.Writer) error {
	var p model.UserProgress
	resp, err := newAPIClient(baseURL).R().
		SetResult(&p).
		Get("/api/progress")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("service returned %d: %s", resp.StatusCode(), resp.String())
	}
	fmt.Fprintf(out, "points: %d\n", p.TotalPoints)
	fmt.Fprintf(out, "events viewed: %d\n", len(p.EventsViewed))
	fmt.Fprintf(out, "collections completed: %d\n", len(p.CollectionsCompleted))
	fmt.Fprintf(out, "streak: %d day(s)\n", p.DailyVisits.Streak)
	fmt.Fprintf(out, "badges:\n")
	for _, b := range p.Badges {
		fmt.Fprintf(out, "  %s %s\n", b.Icon, b.Name)
	}
	return nil
}

func runViewEvent(baseURL, eventID string, out io.Writer) error {
	var p model.UserProgress
	resp, err := newAPIClient(baseURL).R().
		SetResult(&p).
		Post("/api/progress/events/" + eventID + "/view")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("service returned %d: %s", resp.StatusCode(), resp.String())
	}
	fmt.Fprintf(out, "recorded view of %s, points now %d\n", eventID, p.TotalPoints)
	return nil
}

func runCompleteCollection(baseURL, collectionID string, out io.Writer) error {
	var p model.UserProgress
	resp, err := newAPIClient(baseURL).R().
		SetResult(&p).
		Post("/api/progress/collections/" + collectionID + "/complete")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("service returned %d: %s", resp.StatusCode(), resp.String())
	}
	fmt.Fprintf(out, "completed %s, points now %d\n", collectionID, p.TotalPoints)
	return nil
}
