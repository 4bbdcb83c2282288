package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/minaorangina/literature/engine"
	"github.com/minaorangina/literature/game"
	"github.com/minaorangina/literature/store"
	uuid "github.com/satori/go.uuid"
)

var codeRand = rand.New(rand.NewSource(time.Now().UnixNano()))

type NewGameReq struct {
	Name       string `json:"name"`
	NumPlayers int    `json:"num_players"`
}

type PendingGameRes struct {
	GameID   string   `json:"game_id"`
	JoinCode string   `json:"join_code"`
	PlayerID string   `json:"player_id"`
	Name     string   `json:"name"`
	Admin    bool     `json:"is_admin"`
	Players  []string `json:"players"`
}

type JoinGameReq struct {
	JoinCode string `json:"join_code"`
	Name     string `json:"name"`
}

type StartGameReq struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
}

// GameServer serves the lobby endpoints and the websocket entry point.
type GameServer struct {
	store    store.GameStore
	hub      *Hub
	botDelay time.Duration
	http.Server
}

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

// NewGameID constructs a short join code for sharing between players
func NewGameID() string {
	letters := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	code := make([]byte, 6)

	for i := range code {
		code[i] = letters[codeRand.Intn(len(letters))]
	}

	return string(code)
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// NewServer creates a new GameServer
func NewServer(st store.GameStore, botDelay time.Duration) *GameServer {
	s := new(GameServer)

	router := http.NewServeMux()

	router.Handle("/new", http.HandlerFunc(s.HandleNewGame))
	router.Handle("/join", http.HandlerFunc(s.HandleJoinGame))
	router.Handle("/start", http.HandlerFunc(s.HandleStartGame))
	router.Handle("/game/", http.HandlerFunc(s.HandleFindGame))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	s.store = st
	s.hub = NewHub()
	s.botDelay = botDelay

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	s.Handler = handlers.LoggingHandler(os.Stdout, cors(router))

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleNewGame handles a request to create a new game
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w, r)
		return
	}

	if data.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Missing player name"))
		return
	}

	gameID := NewID()
	joinCode := NewGameID()

	gm, err := game.New(gameID, joinCode, data.NumPlayers, nil)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}

	ge := engine.New(gm, g.hub, g.botDelay)

	playerID := NewID()
	if err := ge.AddPlayer(playerID, data.Name); err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := g.store.AddGame(ge); err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	payload := PendingGameRes{
		GameID:   gameID,
		JoinCode: joinCode,
		PlayerID: playerID,
		Name:     data.Name,
		Admin:    true,
		Players:  []string{data.Name},
	}

	bytes, err := json.Marshal(payload)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(bytes)
}

// HandleJoinGame adds a player to a pending game, looked up by join code
func (g *GameServer) HandleJoinGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data JoinGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w, r)
		return
	}

	if data.JoinCode == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Missing join code"))
		return
	}

	if data.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Missing player name"))
		return
	}

	ge, err := g.store.FindGameByJoinCode(data.JoinCode)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}

	playerID := NewID()
	if err := ge.AddPlayer(playerID, data.Name); err != nil {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(err.Error()))
		return
	}

	playerNames := []string{}
	for _, p := range ge.Snapshot().Players {
		playerNames = append(playerNames, p.Name)
	}

	payload := PendingGameRes{
		GameID:   ge.ID(),
		JoinCode: data.JoinCode,
		PlayerID: playerID,
		Name:     data.Name,
		Players:  playerNames,
	}

	bytes, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.Write(bytes)
}

// HandleStartGame fills empty seats with bots, forms teams and deals
func (g *GameServer) HandleStartGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data StartGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w, r)
		return
	}

	if data.GameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	ge, err := g.store.FindGame(data.GameID)
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(data.GameID)))
		return
	}

	if err := ge.Start(); err != nil {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(err.Error()))
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleFindGame returns the public snapshot of a game
func (g *GameServer) HandleFindGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := strings.Replace(r.URL.String(), "/game/", "", 1)
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	ge, err := g.store.FindGame(gameID)
	if err != nil {
		var notFound store.NotFoundError
		if errors.As(err, &notFound) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(unknownGameIDMsg(gameID)))
			return
		}
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	responseBytes, err := json.Marshal(ge.Snapshot())
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.Write(responseBytes)
}

// HandleWS upgrades a player's connection and attaches it to the hub
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	vals, ok := query["game_id"]
	if !ok || len(vals) != 1 {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}
	gameID := vals[0]

	vals, ok = query["player_id"]
	if !ok || len(vals) != 1 {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing player ID"))
		return
	}
	playerID := vals[0]

	ge, err := g.store.FindGame(gameID)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	known := false
	for _, p := range ge.Snapshot().Players {
		if p.PlayerID == playerID {
			known = true
			break
		}
	}
	if !known {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("unknown player ID"))
		return
	}

	rawConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	g.hub.Attach(ge, playerID, rawConn)
}

func writeParseError(err error, w http.ResponseWriter, r *http.Request) {
	if err == io.EOF {
		log.Println(err.Error())
		w.Header().Add("Content-Type", "text/plain")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Missing body"))
		return
	}
	if err != nil {
		log.Println(err.Error())
		w.Header().Add("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}
