package protocol

// MoveType tags an inbound move request
type MoveType int

const (
	AskMove MoveType = iota
	CallMove
	TransferMove
)

var moveTypeNames = []string{"Ask", "Call", "Transfer"}

func (m MoveType) String() string {
	return moveTypeNames[m]
}

// AskPayload requests a specific card from a named opponent
type AskPayload struct {
	AskedFrom string `json:"askedFrom"`
	Card      int    `json:"card"`
}

// ClaimEntry names the claimed holder of one card in a call
type ClaimEntry struct {
	Card   int    `json:"card"`
	Holder string `json:"holder"`
}

// CallPayload declares the full holder assignment for a six-card set
type CallPayload struct {
	Claim []ClaimEntry `json:"claim"`
}

// TransferPayload passes the turn to a teammate after a successful call
type TransferPayload struct {
	TransferTo string `json:"transferTo"`
}

// MoveRequest is a move from a player (or bot) to the engine
type MoveRequest struct {
	Type     MoveType        `json:"type"`
	Ask      AskPayload      `json:"ask,omitempty"`
	Call     CallPayload     `json:"call,omitempty"`
	Transfer TransferPayload `json:"transfer,omitempty"`
}

// MoveRecord is the public record of an executed move
type MoveRecord struct {
	Type        string       `json:"type"`
	Success     bool         `json:"success"`
	Description string       `json:"description"`
	Asker       string       `json:"asker,omitempty"`
	AskedFrom   string       `json:"askedFrom,omitempty"`
	Card        int          `json:"card,omitempty"`
	Caller      string       `json:"caller,omitempty"`
	Set         string       `json:"set,omitempty"`
	Claimed     []ClaimEntry `json:"claimed,omitempty"`
	Actual      []ClaimEntry `json:"actual,omitempty"`
	From        string       `json:"from,omitempty"`
	To          string       `json:"to,omitempty"`
}

// TeamSummary is the public view of a team
type TeamSummary struct {
	Name    string   `json:"name"`
	Score   int      `json:"score"`
	SetsWon []string `json:"setsWon"`
	Players []string `json:"players"`
}

// GameSnapshot is the public view of a game, safe to send to any player
type GameSnapshot struct {
	GameID      string         `json:"gameID"`
	JoinCode    string         `json:"joinCode"`
	Status      string         `json:"status"`
	CurrentTurn string         `json:"currentTurn"`
	Teams       []TeamSummary  `json:"teams"`
	CardCounts  map[string]int `json:"cardCounts"`
	Players     []PlayerInfo   `json:"players"`
}

// HandPayload carries one player's own cards. Only ever sent to that player.
type HandPayload struct {
	Cards []int    `json:"cards"`
	Names []string `json:"names"`
}

// InferenceEntry is one card's belief in a player's tracker view
type InferenceEntry struct {
	Card       int      `json:"card"`
	Name       string   `json:"name"`
	Weight     float64  `json:"weight"`
	Candidates []string `json:"candidates"`
}

// MoveResult is returned to the mover and broadcast to the game
type MoveResult struct {
	Move     MoveRecord   `json:"move"`
	Snapshot GameSnapshot `json:"snapshot"`
}
