// Package identity resolves the display name of the person using the journal.
//
// Resolution is a small step machine so that callback-driven dialog toolkits
// can drive it one answer at a time.
package identity

import (
	"errors"
	"fmt"
	"strings"

	"journal-desk/internal/logger"
)

const (
	ConfirmTitle        = "Welcome Back"
	NameTitle           = "Welcome"
	NamePrompt          = "What's your name?"
	ErrorTitle          = "Error"
	NameRequiredMessage = "Name is required"
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrInvalidPhase = errors.New("identity resolver: operation not valid in current phase")
)

// ConfirmMessage is the question asked when a saved name exists.
func ConfirmMessage(name string) string {
	return fmt.Sprintf("Continue as %s?", name)
}

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAwaitingConfirm
	PhaseAwaitingName
	PhaseResolved
	PhaseAborted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingConfirm:
		return "awaiting_confirm"
	case PhaseAwaitingName:
		return "awaiting_name"
	case PhaseResolved:
		return "resolved"
	case PhaseAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Action tells the caller what to show next.
type Action int

const (
	ActionConfirm Action = iota + 1
	ActionAskName
	ActionProceed
	ActionAbort
)

type Step struct {
	Action Action
	// Name is the saved name for ActionConfirm and the identity for ActionProceed.
	Name string
}

type Resolver struct {
	store    Store
	logger   logger.Logger
	phase    Phase
	saved    string
	identity string
}

func NewResolver(store Store, log logger.Logger) *Resolver {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Resolver{store: store, logger: log}
}

func (r *Resolver) Phase() Phase {
	return r.phase
}

// Identity is empty until the resolver reaches PhaseResolved.
func (r *Resolver) Identity() string {
	return r.identity
}

// Start reads the username record and decides the first prompt.
func (r *Resolver) Start() (Step, error) {
	if r.phase != PhaseIdle {
		return Step{}, r.phaseError("start")
	}

	name, ok, err := r.store.Load()
	if err != nil {
		r.phase = PhaseAborted
		return Step{}, err
	}

	if ok {
		r.saved = name
		r.phase = PhaseAwaitingConfirm
		r.logger.Debug("IdentityResolver", "saved name found", map[string]interface{}{
			"name": name,
		})
		return Step{Action: ActionConfirm, Name: name}, nil
	}

	r.phase = PhaseAwaitingName
	r.logger.Debug("IdentityResolver", "no saved name", nil)
	return Step{Action: ActionAskName}, nil
}

// Confirm answers "Continue as X?". A yes keeps the record untouched.
func (r *Resolver) Confirm(yes bool) (Step, error) {
	if r.phase != PhaseAwaitingConfirm {
		return Step{}, r.phaseError("confirm")
	}

	if yes {
		return r.resolve(r.saved), nil
	}

	r.phase = PhaseAwaitingName
	return Step{Action: ActionAskName}, nil
}

// SubmitName answers the name prompt. ok is false when the prompt was cancelled.
func (r *Resolver) SubmitName(name string, ok bool) (Step, error) {
	if r.phase != PhaseAwaitingName {
		return Step{}, r.phaseError("submit name")
	}

	name = strings.TrimSpace(name)
	if !ok || name == "" {
		r.phase = PhaseAborted
		r.logger.Warning("IdentityResolver", "no name given, aborting", map[string]interface{}{
			"cancelled": !ok,
		})
		return Step{Action: ActionAbort}, nil
	}

	if err := r.store.Save(name); err != nil {
		r.phase = PhaseAborted
		return Step{}, err
	}

	return r.resolve(name), nil
}

func (r *Resolver) resolve(name string) Step {
	r.identity = name
	r.phase = PhaseResolved
	r.logger.Info("IdentityResolver", "identity resolved", map[string]interface{}{
		"name": name,
	})
	return Step{Action: ActionProceed, Name: name}
}

func (r *Resolver) phaseError(op string) error {
	return fmt.Errorf("%s in phase %s: %w", op, r.phase, ErrInvalidPhase)
}
