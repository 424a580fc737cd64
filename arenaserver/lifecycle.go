package arenaserver

import (
	"strconv"
	"time"

	notify "github.com/bitly/go-notify"
	"github.com/ballarena/ballarena/common/utils"
)

// Start launches the tick loop; each tick advances the game by 1/tps seconds
// and publishes the resulting frame on the "viz:message" notify channel.
func (server *Server) Start() {

	utils.Debug("arena", "Start ticking at "+strconv.Itoa(server.tickspersec)+" tps")

	tickduration := time.Duration((1000000 / time.Duration(server.tickspersec)) * time.Microsecond)
	ticker := time.Tick(tickduration)

	server.AddTearDownCall(func() error {
		server.stopticking <- struct{}{}
		close(server.stopticking)

		return nil
	})

	go func() {

		for {
			select {
			case <-server.stopticking:
				{
					utils.Debug("core-loop", "Received stop ticking signal")
					notify.Post("app:stopticking", nil)
					return
				}
			case <-ticker:
				{
					server.doTick()
				}
			}
		}
	}()
}

func (server *Server) Stop() {
	utils.Debug("arena", "TearDown from stop")
	server.TearDown()
}

func (server *Server) doTick() {

	server.ticknum++

	dolog := (server.ticknum % server.tickspersec) == 0

	if dolog && debug {
		utils.Debug("core-loop", "######## Tick ######## "+strconv.Itoa(server.ticknum))
	}

	///////////////////////////////////////////////////////////////////////////
	// Updating world state
	///////////////////////////////////////////////////////////////////////////
	dt := 1.0 / float64(server.tickspersec)
	server.game.Step(server.ticknum, dt)

	///////////////////////////////////////////////////////////////////////////
	// Pushing updated state to viz
	///////////////////////////////////////////////////////////////////////////
	frame := server.game.ProduceVizMessageJson()
	notify.PostTimeout("viz:message", string(frame), time.Millisecond)
}

func (server *Server) AddTearDownCall(fn TearDownCallback) {
	server.tearDownCallbacksMutex.Lock()
	defer server.tearDownCallbacksMutex.Unlock()

	server.tearDownCallbacks = append(server.tearDownCallbacks, fn)
}

func (server *Server) TearDown() {
	server.tearDownCallbacksMutex.Lock()

	for i := len(server.tearDownCallbacks) - 1; i >= 0; i-- {
		utils.Debug("teardown", "Executing TearDownCallback")
		server.tearDownCallbacks[i]()
	}

	// Reset to avoid calling teardown callbacks twice
	server.tearDownCallbacks = make([]TearDownCallback, 0)

	server.tearDownCallbacksMutex.Unlock()
}
