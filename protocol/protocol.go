package protocol

// Cmd names an event fanned out to clients
type Cmd int

const (
	Null Cmd = iota
	NewJoiner
	HasStarted
	MoveMade
	Turn
	Score
	CardCounts
	Hand
	Inference
	GameOver
	Error
)

var cmdNames = []string{
	"Null",
	"NewJoiner",
	"HasStarted",
	"MoveMade",
	"Turn",
	"Score",
	"CardCounts",
	"Hand",
	"Inference",
	"GameOver",
	"Error",
}

func (c Cmd) String() string {
	return cmdNames[c]
}

// PlayerInfo is the public identity of a player
type PlayerInfo struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
	IsBot    bool   `json:"isBot,omitempty"`
}
