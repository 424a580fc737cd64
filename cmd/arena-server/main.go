package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/ballarena/ballarena/arenaserver"
	commontypes "github.com/ballarena/ballarena/common/types"
	"github.com/ballarena/ballarena/common/utils"
	"github.com/ballarena/ballarena/game/ballworld"
	"github.com/ballarena/ballarena/vizserver"
)

func main() {

	port := flag.Int("port", 8080, "Port serving the viz")
	tps := flag.Int("tps", 20, "Number of ticks per second")
	balls := flag.Int("balls", 10, "Number of balls scattered in the world")
	seed := flag.Int64("seed", 0, "Random seed; 0 means time-based")
	width := flag.Float64("width", 40, "World width in meters")
	height := flag.Float64("height", 30, "World height in meters")

	flag.Parse()

	utils.Assert(*tps > 0, "tps must be strictly positive")
	utils.Assert(*balls >= 0, "balls must not be negative")
	utils.Assert(*width > 0 && *height > 0, "world dimensions must be strictly positive")

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	gameID := uuid.NewV4().String()
	log.Println("Ball Arena Server v0.1 ID#" + gameID)

	rng := rand.New(rand.NewSource(*seed))
	bounds := commontypes.MakeBounds(0, *width, 0, *height)

	game := ballworld.NewBallworldGame(gameID, bounds, rng)
	err := game.CreateRandomBalls(*balls)
	utils.Check(err, "Could not create balls")

	server := arenaserver.NewServer(gameID, game, *tps)
	server.Start()

	viz := vizserver.NewVizService("0.0.0.0:"+strconv.Itoa(*port), server)

	go func() {
		err := viz.ListenAndServe()
		utils.Check(err, "Could not start viz service")
	}()

	hassigtermed := make(chan os.Signal, 2)
	signal.Notify(hassigtermed, syscall.SIGTERM, os.Interrupt)
	<-hassigtermed

	server.Stop()
}
