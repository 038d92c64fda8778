package session

import "github.com/google/uuid"

const EventTypeSessionInvalidated = "session_invalidated"

// SessionInvalidated is published when the backend rejects a scope's
// credential, after the scope's cookies have already been cleared.
type SessionInvalidated struct {
	EventID uuid.UUID
	Scope   Scope
}

func NewSessionInvalidated(scope Scope) SessionInvalidated {
	return SessionInvalidated{
		EventID: uuid.New(),
		Scope:   scope,
	}
}

func (e SessionInvalidated) ID() uuid.UUID {
	return e.EventID
}

func (e SessionInvalidated) Type() string {
	return EventTypeSessionInvalidated
}
