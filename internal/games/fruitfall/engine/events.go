package engine

import "fmt"

// EventType identifies an outbound notification for audio and UI cues.
type EventType uint8

const (
	EventMoved EventType = iota
	EventRotated
	EventDropped
	EventMatchCleared
	EventBigClear
	EventLevelUp
	EventGameOver
	EventRestarted
	EventSpawned
	EventLocked
	EventHazardArmed
	EventHazardResolved
	EventDifficultyChanged
)

var eventNames = [...]string{
	EventMoved:             "moved",
	EventRotated:           "rotated",
	EventDropped:           "dropped",
	EventMatchCleared:      "match_cleared",
	EventBigClear:          "big_clear",
	EventLevelUp:           "level_up",
	EventGameOver:          "game_over",
	EventRestarted:         "restarted",
	EventSpawned:           "spawned",
	EventLocked:            "locked",
	EventHazardArmed:       "hazard_armed",
	EventHazardResolved:    "hazard_resolved",
	EventDifficultyChanged: "difficulty_changed",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return fmt.Sprintf("event(%d)", uint8(t))
}

// Event is a fire-and-forget notification.
// Count is the cleared cell count, Points the award, Level the new level
// or difficulty index, Kind and At the token involved, when relevant.
type Event struct {
	Type   EventType
	Count  int
	Points int
	Level  int
	Kind   Kind
	At     Coord
}

// CommandType identifies an inbound player command.
type CommandType uint8

const (
	CmdMoveLeft CommandType = iota
	CmdMoveRight
	CmdRotate
	CmdHardDrop
	CmdRestart
	CmdSetDifficulty
)

// Command is an abstract player intent. Difficulty is only read by
// CmdSetDifficulty.
type Command struct {
	Type       CommandType
	Difficulty int
}
