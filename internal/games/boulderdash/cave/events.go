package cave

import "fmt"

// EventType classifies a notification produced during a turn.
type EventType uint8

const (
	EventSound EventType = iota
	EventScoreDelta
	EventDiamondPickedUp
	EventEnoughDiamonds
	EventCaveExited
	EventPlayerDied
	EventBonusLife
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventSound:
		return "sound"
	case EventScoreDelta:
		return "score"
	case EventDiamondPickedUp:
		return "diamond"
	case EventEnoughDiamonds:
		return "enough-diamonds"
	case EventCaveExited:
		return "cave-exited"
	case EventPlayerDied:
		return "player-died"
	case EventBonusLife:
		return "bonus-life"
	default:
		return "unknown"
	}
}

// Sound is an audio cue attached to EventSound.
type Sound uint8

const (
	SoundNone Sound = iota
	SoundFall
	SoundBoulderImpact
	SoundDiamondImpact
	SoundMagicWall
	SoundMoveSpace
	SoundMoveDirt
	SoundPickup
	SoundPush
	SoundExplosion
	SoundCrack
	SoundAmoeba
	SoundTimeout
	SoundExit
)

var soundNames = [...]string{
	SoundNone:          "none",
	SoundFall:          "fall",
	SoundBoulderImpact: "boulder-impact",
	SoundDiamondImpact: "diamond-impact",
	SoundMagicWall:     "magic-wall",
	SoundMoveSpace:     "move-space",
	SoundMoveDirt:      "move-dirt",
	SoundPickup:        "pickup",
	SoundPush:          "push",
	SoundExplosion:     "explosion",
	SoundCrack:         "crack",
	SoundAmoeba:        "amoeba",
	SoundTimeout:       "timeout",
	SoundExit:          "exit",
}

// String returns the sound name.
func (s Sound) String() string {
	if int(s) < len(soundNames) {
		return soundNames[s]
	}
	return "unknown"
}

// Event is one discrete notification for the session, the renderer and
// the audio layer.
type Event struct {
	Type   EventType
	Sound  Sound
	Pos    Pos
	Amount int
}

// String renders the event for debug logs.
func (e Event) String() string {
	switch e.Type {
	case EventSound:
		return fmt.Sprintf("sound %s at %v", e.Sound, e.Pos)
	case EventScoreDelta, EventDiamondPickedUp, EventBonusLife:
		return fmt.Sprintf("%s %+d", e.Type, e.Amount)
	default:
		return fmt.Sprintf("%s at %v", e.Type, e.Pos)
	}
}

// Filter returns the events of type t.
func Filter(events []Event, t EventType) []Event {
	var out []Event
	for _, e := range events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Sum adds up the Amount of every event of type t.
func Sum(events []Event, t EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n += e.Amount
		}
	}
	return n
}
