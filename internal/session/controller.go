// Package session owns the display state and applies lookup and suggestion
// results to it in issue order.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/i474232898/weather-lookup/internal/metrics"
	"github.com/i474232898/weather-lookup/internal/weather"
)

// Looker runs the resolve → fetch chain for a query.
type Looker interface {
	Lookup(ctx context.Context, query string) (weather.Report, error)
}

// Suggester returns typeahead candidates; it never fails.
type Suggester interface {
	Suggest(ctx context.Context, partial string) []weather.Candidate
}

// HistoryReader exposes the persisted search history, most recent first.
type HistoryReader interface {
	Entries() []string
}

// Controller is the single owner of State.
//
// Submissions: the latest issued submission wins. A submission that completes
// after a newer one was issued leaves the display untouched; the displayed
// history is always re-read from the store, so it matches what was persisted
// regardless of completion order. Refreshes never supersede a submission.
// Suggestions: a response is applied only if no later-issued request has
// already been applied.
type Controller struct {
	looker    Looker
	suggester Suggester
	history   HistoryReader
	log       logrus.FieldLogger
	now       func() time.Time

	mu             sync.Mutex
	state          State
	submitIssued   uint64
	suggestIssued  uint64
	suggestApplied uint64
}

// NewController creates a Controller. history may be nil, in which case no
// search history is displayed.
func NewController(looker Looker, suggester Suggester, history HistoryReader, unit weather.Unit, log logrus.FieldLogger) *Controller {
	if unit == "" {
		unit = weather.UnitCelsius
	}
	c := &Controller{
		looker:    looker,
		suggester: suggester,
		history:   history,
		log:       log,
		now:       time.Now,
	}
	c.syncHistory()
	c.state.unitUpdated(unit)
	return c
}

// Submit resolves query and fetches its weather. The returned report and error
// belong to this submission even when it was superseded for display.
func (c *Controller) Submit(ctx context.Context, query string) (weather.Report, error) {
	id := uuid.NewString()
	log := c.log.WithFields(logrus.Fields{"submission": id, "query": query})

	c.mu.Lock()
	c.submitIssued++
	seq := c.submitIssued
	c.state.submitStarted(query)
	c.mu.Unlock()

	report, err := c.looker.Lookup(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err == nil {
		c.syncHistory()
	}

	if seq != c.submitIssued {
		metrics.StaleResults.WithLabelValues("submission").Inc()
		log.Debug("discarding superseded submission result")
		return report, err
	}

	if err != nil {
		log.WithError(err).Warn("lookup failed")
		c.state.submitFailed(weather.UserMessage(err))
		return report, err
	}

	log.WithField("location", report.Location.DisplayName()).Info("lookup succeeded")
	c.state.submitSucceeded(report)
	return report, nil
}

// SubmitCandidate submits a picked suggestion by its display name.
func (c *Controller) SubmitCandidate(ctx context.Context, candidate weather.Candidate) (weather.Report, error) {
	return c.Submit(ctx, candidate.DisplayName())
}

// Refresh re-fetches the currently displayed location. It reports false when
// nothing is displayed or a submission is in flight. A submission issued while
// the refresh runs wins over it; a failed refresh keeps the displayed result.
func (c *Controller) Refresh(ctx context.Context) (bool, error) {
	c.mu.Lock()
	if c.state.Location == nil || c.state.Loading {
		c.mu.Unlock()
		return false, nil
	}
	name := c.state.Location.DisplayName()
	seq := c.submitIssued
	c.mu.Unlock()

	log := c.log.WithField("location", name)
	report, err := c.looker.Lookup(ctx, name)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err == nil {
		c.syncHistory()
	}

	if seq != c.submitIssued {
		metrics.StaleResults.WithLabelValues("refresh").Inc()
		log.Debug("discarding refresh overtaken by a submission")
		return true, err
	}

	if err != nil {
		log.WithError(err).Warn("refresh failed")
		return true, err
	}

	c.state.submitSucceeded(report)
	return true, nil
}

// Suggest looks up typeahead candidates for partial and applies them unless a
// later-issued request already has been.
func (c *Controller) Suggest(ctx context.Context, partial string) []weather.Candidate {
	c.mu.Lock()
	c.suggestIssued++
	seq := c.suggestIssued
	c.mu.Unlock()

	candidates := c.suggester.Suggest(ctx, partial)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq <= c.suggestApplied {
		metrics.StaleResults.WithLabelValues("suggestion").Inc()
		return candidates
	}
	c.suggestApplied = seq
	c.state.suggestionsUpdated(candidates)
	return candidates
}

// SetUnit changes the display unit.
func (c *Controller) SetUnit(unit weather.Unit) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.unitUpdated(unit)
}

// ToggleUnit switches between Celsius and Fahrenheit and returns the new unit.
func (c *Controller) ToggleUnit() weather.Unit {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.unitUpdated(c.state.Unit.Toggle())
	return c.state.Unit
}

// syncHistory copies the persisted history into the state. Callers hold c.mu.
func (c *Controller) syncHistory() {
	if c.history == nil {
		return
	}
	c.state.historyUpdated(c.history.Entries())
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// View renders the current state for display.
func (c *Controller) View() View {
	return Render(c.Snapshot(), c.now())
}

// ViewIn renders the current state in unit without changing the selected unit.
func (c *Controller) ViewIn(unit weather.Unit) View {
	s := c.Snapshot()
	s.Unit = unit
	return Render(s, c.now())
}
