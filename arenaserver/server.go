package arenaserver

import (
	"sync"

	"github.com/ballarena/ballarena/game/ballworld"
)

const debug = false

type TearDownCallback func() error

// Server is the external clock of the simulation: it owns the game and ticks
// it at a fixed rate. Rendering and input never touch the game directly; they
// go through the published frames and the game's action controller.
type Server struct {
	game        *ballworld.BallworldGame
	gameID      string
	tickspersec int
	ticknum     int

	stopticking chan struct{}

	tearDownCallbacks      []TearDownCallback
	tearDownCallbacksMutex *sync.Mutex
}

func NewServer(gameID string, game *ballworld.BallworldGame, tickspersec int) *Server {
	return &Server{
		game:        game,
		gameID:      gameID,
		tickspersec: tickspersec,

		stopticking: make(chan struct{}),

		tearDownCallbacks:      make([]TearDownCallback, 0),
		tearDownCallbacksMutex: &sync.Mutex{},
	}
}

func (server *Server) GetGame() *ballworld.BallworldGame {
	return server.game
}

func (server *Server) GetGameID() string {
	return server.gameID
}

func (server *Server) GetTps() int {
	return server.tickspersec
}
