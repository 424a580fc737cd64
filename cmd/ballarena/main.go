package main

import (
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	uuid "github.com/satori/go.uuid"
	"github.com/skratchdot/open-golang/open"
	"github.com/urfave/cli"
	bettererrors "github.com/xtuc/better-errors"

	"github.com/ballarena/ballarena/arenaserver"
	commontypes "github.com/ballarena/ballarena/common/types"
	"github.com/ballarena/ballarena/common/utils"
	"github.com/ballarena/ballarena/game/ballworld"
	"github.com/ballarena/ballarena/vizserver"
)

func main() {
	app := cli.NewApp()

	app.Name = "ballarena"
	app.Usage = "Run a ball arena locally and watch it in the browser"
	app.Version = utils.GetVersion()

	app.Flags = []cli.Flag{
		cli.IntFlag{Name: "port", Value: 8080, Usage: "Port serving the viz"},
		cli.IntFlag{Name: "tps", Value: 20, Usage: "Number of ticks per second"},
		cli.IntFlag{Name: "balls", Value: 10, Usage: "Number of balls scattered in the world"},
		cli.Int64Flag{Name: "seed", Value: 0, Usage: "Random seed; 0 means time-based"},
		cli.BoolFlag{Name: "no-browser", Usage: "Do not open the viz in the browser"},
	}

	app.Action = func(c *cli.Context) error {
		return run(c)
	}

	if err := app.Run(os.Args); err != nil {
		utils.FailWith(err)
	}
}

func run(c *cli.Context) error {

	tps := c.Int("tps")
	if tps <= 0 {
		return bettererrors.
			New("tps must be strictly positive").
			SetContext("tps", strconv.Itoa(tps))
	}

	seed := c.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gameID := uuid.NewV4().String()
	rng := rand.New(rand.NewSource(seed))
	bounds := commontypes.MakeBounds(0, 40, 0, 30)

	game := ballworld.NewBallworldGame(gameID, bounds, rng)
	if err := game.CreateRandomBalls(c.Int("balls")); err != nil {
		return bettererrors.
			New("could not create balls").
			With(bettererrors.NewFromErr(err))
	}

	server := arenaserver.NewServer(gameID, game, tps)
	server.Start()

	addr := "127.0.0.1:" + strconv.Itoa(c.Int("port"))
	viz := vizserver.NewVizService(addr, server)

	go func() {
		err := viz.ListenAndServe()
		utils.Check(err, "Could not start viz service")
	}()

	url := "http://" + addr + "/"
	utils.Debug("ballarena", "Viz ready on "+url)

	if !c.Bool("no-browser") {
		if err := open.Run(url); err != nil {
			utils.Debug("ballarena", "Could not open the browser; "+err.Error())
		}
	}

	hassigtermed := make(chan os.Signal, 2)
	signal.Notify(hassigtermed, syscall.SIGTERM, os.Interrupt)
	<-hassigtermed

	server.Stop()

	return nil
}
