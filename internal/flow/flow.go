// Package flow wires the selection store to the confirmation gate.
//
// The controller decides when an apply gesture needs confirmation and
// dispatches whatever action the gate resolves to.
package flow

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/five82/facet/internal/confirm"
	"github.com/five82/facet/internal/selection"
)

// Action names an operation on the selection store.
type Action int

const (
	ActionNone Action = iota
	ActionApplyDraft
	ActionDiscardDraft
	ActionResetAll
)

func (a Action) String() string {
	switch a {
	case ActionApplyDraft:
		return "apply-draft"
	case ActionDiscardDraft:
		return "discard-draft"
	case ActionResetAll:
		return "reset-all"
	default:
		return "none"
	}
}

// DismissPolicy selects what an explicit dismiss of the prompt does.
type DismissPolicy int

const (
	// DismissKeep closes the prompt and runs nothing; the editor keeps its draft.
	DismissKeep DismissPolicy = iota
	// DismissCancel treats a dismiss as Cancel.
	DismissCancel
)

// ParseDismissPolicy maps a config value to a policy. Unknown values fall
// back to DismissKeep.
func ParseDismissPolicy(value string) (DismissPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "keep":
		return DismissKeep, nil
	case "cancel":
		return DismissCancel, nil
	default:
		return DismissKeep, fmt.Errorf("unknown dismiss policy %q", value)
	}
}

// Prompt is the payload attached to every request the controller opens.
type Prompt struct {
	Kind    Action
	Changes []selection.Change
}

// Controller coordinates one selection store and one gate.
type Controller struct {
	store   *selection.Store
	gate    *confirm.Gate[Action]
	dismiss DismissPolicy
	log     zerolog.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithDismissPolicy sets the dismiss policy.
func WithDismissPolicy(p DismissPolicy) Option {
	return func(c *Controller) {
		c.dismiss = p
	}
}

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// New builds a controller around store and gate.
func New(store *selection.Store, gate *confirm.Gate[Action], opts ...Option) *Controller {
	c := &Controller{
		store: store,
		gate:  gate,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Store returns the selection store.
func (c *Controller) Store() *selection.Store {
	return c.store
}

// Gate returns the confirmation gate.
func (c *Controller) Gate() *confirm.Gate[Action] {
	return c.gate
}

// Apply handles the apply gesture. When the draft differs from the committed
// selection it opens a confirmation and returns true; otherwise it closes the
// editor directly.
func (c *Controller) Apply() bool {
	if !c.store.HasPendingChanges() {
		c.store.CloseModal()
		return false
	}
	req := c.gate.Open(ActionApplyDraft,
		confirm.WithCancel(ActionDiscardDraft),
		confirm.WithPayload[Action](Prompt{Kind: ActionApplyDraft, Changes: c.store.PendingDiff()}),
	)
	c.log.Debug().Str("request", req.ID).Msg("apply awaiting confirmation")
	return true
}

// RequestReset asks to clear the committed selection. Nothing happens when
// the selection is already empty.
func (c *Controller) RequestReset() bool {
	if !c.store.HasSelection() {
		return false
	}
	req := c.gate.Open(ActionResetAll,
		confirm.WithPayload[Action](Prompt{
			Kind:    ActionResetAll,
			Changes: selection.Diff(c.store.Selection(), nil),
		}),
	)
	c.log.Debug().Str("request", req.ID).Msg("reset awaiting confirmation")
	return true
}

// Confirm resolves the pending request and runs its confirm action.
func (c *Controller) Confirm() Action {
	action, ok := c.gate.Confirm()
	if !ok {
		return ActionNone
	}
	c.Dispatch(action)
	return action
}

// Cancel resolves the pending request and runs its cancel action, if any.
func (c *Controller) Cancel() Action {
	action, ok := c.gate.Cancel()
	if !ok {
		return ActionNone
	}
	c.Dispatch(action)
	return action
}

// Dismiss handles an explicit close of the prompt according to the policy.
func (c *Controller) Dismiss() Action {
	if c.dismiss == DismissCancel {
		return c.Cancel()
	}
	c.gate.Close()
	return ActionNone
}

// Dispatch runs action against the store.
func (c *Controller) Dispatch(action Action) {
	switch action {
	case ActionApplyDraft:
		c.store.ApplyDraft()
	case ActionDiscardDraft:
		c.store.DiscardDraft()
	case ActionResetAll:
		c.store.ResetAll()
	default:
		return
	}
	c.log.Info().Stringer("action", action).Msg("selection action dispatched")
}
