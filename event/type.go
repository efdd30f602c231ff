package event

// EventType represents the type of round event
type EventType int

const (
	// EventObjectSliced signals an object was cut this tick
	// Trigger: Slice detector match | Payload: *SlicedPayload
	// Consumer: audio (sound by kind)
	EventObjectSliced EventType = iota

	// EventComboAwarded signals points were added for fruit hits
	// Trigger: Combo aggregator | Payload: *ComboPayload
	EventComboAwarded

	// EventFruitMissed signals an unsliced fruit left the play area
	// Trigger: Lifecycle sweep | Payload: *MissPayload
	EventFruitMissed

	// EventFreezeStarted signals an ice slice froze the round
	// Trigger: Ice sliced | Payload: *FreezePayload
	EventFreezeStarted

	// EventFreezeEnded signals spawn and motion resumed
	// Trigger: Tick after frozen_until | Payload: nil
	EventFreezeEnded

	// EventBombSliced signals the round is terminated by a bomb
	// Trigger: Bomb sliced | Payload: *SlicedPayload
	EventBombSliced

	// EventRoundEnded signals the round reached its terminal state
	// Emitted exactly once per round | Payload: *RoundEndedPayload
	EventRoundEnded
)

func (t EventType) String() string {
	switch t {
	case EventObjectSliced:
		return "object_sliced"
	case EventComboAwarded:
		return "combo_awarded"
	case EventFruitMissed:
		return "fruit_missed"
	case EventFreezeStarted:
		return "freeze_started"
	case EventFreezeEnded:
		return "freeze_ended"
	case EventBombSliced:
		return "bomb_sliced"
	case EventRoundEnded:
		return "round_ended"
	default:
		return "unknown"
	}
}
