package nexthire

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventPayloads(t *testing.T) {
	// Turn completed
	e, err := NewEventTurnCompletedEvent(*NewServerIdentifier(), &Identifier{Type: UIIdentifierType}, TurnCompleted{
		AIResponse:      "Why Go?",
		CandidateAnswer: "I like concurrency",
		QuestionNumber:  2,
		SessionID:       "default",
	})
	assert.NoError(t, err)
	assert.Equal(t, EventTurnCompletedEvent, e.Name)
	var tc TurnCompleted
	assert.NoError(t, json.Unmarshal(e.Payload, &tc))
	assert.Equal(t, "default", tc.SessionID)
	assert.Equal(t, 2, tc.QuestionNumber)

	// UI disconnected
	e, err = NewEventUIDisconnectedEvent(*NewServerIdentifier(), nil, "ui-1")
	assert.NoError(t, err)
	name, err := ParseEventUIDisconnectedPayload(e)
	assert.NoError(t, err)
	assert.Equal(t, "ui-1", name)

	// Wrong event name
	e.Name = EventUIWelcomeEvent
	_, err = ParseEventUIDisconnectedPayload(e)
	assert.Error(t, err)
}

func TestDispatcher(t *testing.T) {
	d := NewDispatcher()
	var m sync.Mutex
	var names []string
	wg := sync.WaitGroup{}
	h := func(label string) EventHandler {
		return func(e *Event) error {
			m.Lock()
			names = append(names, label)
			m.Unlock()
			wg.Done()
			return nil
		}
	}

	n := EventSessionConcludedEvent
	d.On(DispatchConditions{Name: &n}, h("by-name"))
	d.On(DispatchConditions{To: &Identifier{Type: UIIdentifierType}}, h("by-to"))

	e, err := NewEventSessionConcludedEvent(*NewServerIdentifier(), &Identifier{Type: UIIdentifierType}, "default")
	assert.NoError(t, err)
	wg.Add(2)
	d.Dispatch(e)
	wg.Wait()
	assert.Len(t, names, 2)

	// No matching handler
	e, err = NewEventCaptureStartedEvent(*NewServerIdentifier(), nil, "default")
	assert.NoError(t, err)
	d.Dispatch(e)
	m.Lock()
	assert.Len(t, names, 2)
	m.Unlock()
}
