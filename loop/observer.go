package loop

import "github.com/tailored-agentic-units/shellagent/observability"

// Loop event types emitted during the agentic cycle.
const (
	EventTurnStart      observability.EventType = "loop.turn.start"
	EventDisclosure     observability.EventType = "loop.context.disclosed"
	EventModelCall      observability.EventType = "loop.model.call"
	EventActionProposed observability.EventType = "loop.action.proposed"
	EventActionDenied   observability.EventType = "loop.action.denied"
	EventExecComplete   observability.EventType = "loop.exec.complete"
	EventResponse       observability.EventType = "loop.response"
	EventError          observability.EventType = "loop.error"
)
