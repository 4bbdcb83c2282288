package game

import "fmt"

// Status represents the lifecycle stage of a game. Transitions only ever
// move forward, one stage at a time.
type Status int

const (
	Created Status = iota
	PlayersReady
	TeamsCreated
	InProgress
	Completed
)

var statusNames = []string{
	"CREATED",
	"PLAYERS_READY",
	"TEAMS_CREATED",
	"IN_PROGRESS",
	"COMPLETED",
}

func (s Status) String() string {
	return statusNames[s]
}

// transition is the single source of truth for legal status changes
func (g *Game) transition(to Status) error {
	if to != g.Status+1 {
		return fmt.Errorf("illegal status transition %s -> %s", g.Status, to)
	}
	g.Status = to
	return nil
}
