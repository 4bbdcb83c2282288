package engine

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/minaorangina/literature/bot"
	"github.com/minaorangina/literature/game"
	"github.com/minaorangina/literature/protocol"
)

// Publisher is the broadcast collaborator. Implementations must not
// block: the engine publishes while holding the game lock.
type Publisher interface {
	PublishToGame(gameID string, event protocol.Cmd, payload interface{})
	PublishToPlayer(gameID, playerID string, event protocol.Cmd, payload interface{})
}

// NopPublisher discards everything. Useful in tests and for games that
// have no listeners yet.
type NopPublisher struct{}

func (NopPublisher) PublishToGame(string, protocol.Cmd, interface{})           {}
func (NopPublisher) PublishToPlayer(string, string, protocol.Cmd, interface{}) {}

var defaultTeamNames = [2]string{"Team 1", "Team 2"}

// GameEngine owns one game session. All access to the underlying game is
// serialized through its mutex, so moves are validated and executed as
// one atomic unit and are never interleaved. Bot moves go through the
// same path as human moves.
type GameEngine struct {
	mu       sync.Mutex
	game     *game.Game
	pub      Publisher
	bot      *bot.Bot
	botDelay time.Duration
}

// New constructs an engine around a game
func New(g *game.Game, pub Publisher, botDelay time.Duration) *GameEngine {
	if pub == nil {
		pub = NopPublisher{}
	}
	return &GameEngine{
		game:     g,
		pub:      pub,
		bot:      bot.New(nil),
		botDelay: botDelay,
	}
}

// ID returns the game's ID
func (e *GameEngine) ID() string {
	return e.game.ID
}

// JoinCode returns the game's join code
func (e *GameEngine) JoinCode() string {
	return e.game.JoinCode
}

// Snapshot returns the public view of the game
func (e *GameEngine) Snapshot() protocol.GameSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Snapshot()
}

// AddPlayer seats a joining player and announces them to the table
func (e *GameEngine) AddPlayer(playerID, name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.game.AddPlayer(playerID, name, false); err != nil {
		return err
	}

	e.pub.PublishToGame(e.game.ID, protocol.NewJoiner, protocol.PlayerInfo{
		PlayerID: playerID,
		Name:     name,
	})
	return nil
}

// Start fills any empty seats with bots, forms teams, deals, and fans out
// each player's opening hand. If the opening turn lands on a bot, its
// first move is scheduled.
func (e *GameEngine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	g := e.game

	botNum := 0
	for g.Status == game.Created {
		botNum++
		id := fmt.Sprintf("%s-bot-%d", g.ID, botNum)
		if err := g.AddPlayer(id, fmt.Sprintf("Bot %d", botNum), true); err != nil {
			return err
		}
	}

	if err := g.FormTeams(defaultTeamNames[0], defaultTeamNames[1]); err != nil {
		return err
	}
	if err := g.DealShuffled(); err != nil {
		return err
	}

	e.pub.PublishToGame(g.ID, protocol.HasStarted, g.Snapshot())
	e.publishPrivateState()
	e.scheduleBotTurn()

	return nil
}

// HandleMove validates and executes one move. A validation failure leaves
// the game untouched; a validated move is applied in full before the next
// move is accepted.
func (e *GameEngine) HandleMove(playerID string, req protocol.MoveRequest) (protocol.MoveResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.handleMove(playerID, req)
}

// handleMove must be called with the lock held
func (e *GameEngine) handleMove(playerID string, req protocol.MoveRequest) (protocol.MoveResult, error) {
	g := e.game

	var move game.Move
	switch req.Type {
	case protocol.AskMove:
		facts, err := g.ValidateAsk(playerID, req.Ask)
		if err != nil {
			return protocol.MoveResult{}, err
		}
		move = g.ApplyAsk(facts)

	case protocol.CallMove:
		facts, err := g.ValidateCall(playerID, req.Call)
		if err != nil {
			return protocol.MoveResult{}, err
		}
		move = g.ApplyCall(facts)

	case protocol.TransferMove:
		facts, err := g.ValidateTransfer(playerID, req.Transfer)
		if err != nil {
			return protocol.MoveResult{}, err
		}
		move = g.ApplyTransfer(facts)

	default:
		return protocol.MoveResult{}, game.ValidationError("unknown move type")
	}

	result := protocol.MoveResult{
		Move:     g.RecordOf(move),
		Snapshot: g.Snapshot(),
	}

	e.pub.PublishToGame(g.ID, protocol.MoveMade, result)
	e.publishPrivateState()

	if g.Status == game.Completed {
		e.pub.PublishToGame(g.ID, protocol.GameOver, result.Snapshot)
	} else {
		e.scheduleBotTurn()
	}

	return result, nil
}

// publishPrivateState sends each player their own hand and inference
// view. Nobody ever receives another player's hand.
func (e *GameEngine) publishPrivateState() {
	g := e.game
	for _, p := range g.Players {
		if p.IsBot {
			continue
		}
		e.pub.PublishToPlayer(g.ID, p.ID, protocol.Hand, g.BuildHand(p.Seat))
		e.pub.PublishToPlayer(g.ID, p.ID, protocol.Inference, g.BuildInference(p.Seat))
	}
}

// scheduleBotTurn arranges a bot move if the turn now sits with a bot.
// Must be called with the lock held.
func (e *GameEngine) scheduleBotTurn() {
	g := e.game
	if g.Status != game.InProgress || !g.Players[g.CurrentTurn].IsBot {
		return
	}

	seat := g.CurrentTurn
	time.AfterFunc(e.botDelay, func() { e.playBotTurn(seat) })
}

func (e *GameEngine) playBotTurn(seat int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	g := e.game
	// the world may have moved on since this was scheduled
	if g.Status != game.InProgress || g.CurrentTurn != seat || !g.Players[seat].IsBot {
		return
	}

	req, err := e.bot.Decide(g, seat)
	if err != nil {
		// no legal move should be impossible while cards remain
		log.Printf("ALERT: game %s seat %d: %s", g.ID, seat, err.Error())
		return
	}

	if _, err := e.handleMove(g.Players[seat].ID, req); err != nil {
		log.Printf("ALERT: game %s rejected bot move: %s", g.ID, err.Error())
	}
}
