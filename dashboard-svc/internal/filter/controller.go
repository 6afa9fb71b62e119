// Package filter holds the single "active issue" selection of a page view and
// derives the visible review list from it.
package filter

import (
	"fmt"
	"strings"

	"review-insights/dashboard-svc/internal/domain"

	"github.com/felixgeelhaar/statekit"
)

// Machine states and events. Untyped so they convert to statekit.StateID and
// statekit.EventType.
const (
	StateUnfiltered = "unfiltered"
	StateFiltered   = "filtered"

	eventSet   = "set"
	eventClear = "clear"
)

// keywordRules maps an issue label to the literal substring a review must
// contain to stay visible while that issue is active. Labels without a rule
// match nothing.
var keywordRules = map[string]string{
	"غذا سرد رسید":   "سرد",
	"تاخیر در تحویل": "تاخیر",
}

// Keyword returns the substring associated with an issue label.
func Keyword(issue string) (string, bool) {
	kw, ok := keywordRules[issue]
	return kw, ok
}

// Matches reports whether a review text survives the given issue filter.
func Matches(issue, text string) bool {
	kw, ok := keywordRules[issue]
	return ok && strings.Contains(text, kw)
}

// State is an immutable snapshot of the filter selection.
type State struct {
	Issue string
}

func (s State) Active() bool { return s.Issue != "" }

// Apply returns the reviews visible under s. With no active issue the input is
// returned unchanged, in its original order.
func (s State) Apply(comments []domain.Comment) []domain.Comment {
	if !s.Active() {
		return comments
	}
	kept := make([]domain.Comment, 0, len(comments))
	for _, c := range comments {
		if Matches(s.Issue, c.Text) {
			kept = append(kept, c)
		}
	}
	return kept
}

type machineContext struct {
	ViewID string
	Issue  string
}

const (
	guardHasIssue = "hasIssue"

	actionSelectIssue = "selectIssue"
	actionResetIssue  = "resetIssue"
)

// Controller owns the filter selection of one page view. The interpreter is
// the only holder of that selection: its state says whether a filter is
// active and its context carries the issue.
type Controller struct {
	interpreter *statekit.Interpreter[machineContext]
}

func NewController(viewID string) (*Controller, error) {
	builder := statekit.NewMachine[machineContext]("issue-filter").
		WithInitial(statekit.StateID(StateUnfiltered)).
		WithContext(machineContext{ViewID: viewID}).
		WithGuard(guardHasIssue, func(_ machineContext, e statekit.Event) bool {
			issue, ok := e.Payload.(string)
			return ok && strings.TrimSpace(issue) != ""
		}).
		WithAction(actionSelectIssue, func(ctx *machineContext, e statekit.Event) {
			ctx.Issue, _ = e.Payload.(string)
		}).
		WithAction(actionResetIssue, func(ctx *machineContext, _ statekit.Event) {
			ctx.Issue = ""
		})

	builder.State(StateUnfiltered).
		On(eventSet).Target(StateFiltered).Guard(guardHasIssue).Do(actionSelectIssue).
		Done()

	builder.State(StateFiltered).
		On(eventSet).Target(StateFiltered).Guard(guardHasIssue).Do(actionSelectIssue).
		On(eventClear).Target(StateUnfiltered).Do(actionResetIssue).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build filter machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &Controller{interpreter: interpreter}, nil
}

// SetFilter makes issue the only active filter. An empty issue clears; a
// blank one is refused and the current selection stays.
func (c *Controller) SetFilter(issue string) {
	if issue == "" {
		c.ClearFilter()
		return
	}
	c.interpreter.Send(statekit.Event{Type: statekit.EventType(eventSet), Payload: issue})
}

func (c *Controller) ClearFilter() {
	c.interpreter.Send(statekit.Event{Type: statekit.EventType(eventClear)})
}

func (c *Controller) Current() string {
	return string(c.interpreter.State().Value)
}

// State reads the selection back out of the machine.
func (c *Controller) State() State {
	current := c.interpreter.State()
	if current.Value != statekit.StateID(StateFiltered) {
		return State{}
	}
	return State{Issue: current.Context.Issue}
}
