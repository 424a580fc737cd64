package types

import (
	commontypes "github.com/ballarena/ballarena/common/types"
	"github.com/ballarena/ballarena/arenaserver"
	"github.com/ballarena/ballarena/common/utils"
)

// VizGame couples the running arena with its pool of connected watchers.
type VizGame struct {
	server *arenaserver.Server
	pool   *WatcherMap
}

func NewVizGame(server *arenaserver.Server) *VizGame {
	return &VizGame{
		server: server,
		pool:   NewWatcherMap(),
	}
}

func (vizgame *VizGame) GetServer() *arenaserver.Server {
	return vizgame.server
}

func (vizgame *VizGame) GetTps() int {
	return vizgame.server.GetTps()
}

type VizInitMessageData struct {
	Tps    int                `json:"tps"`
	Bounds commontypes.Bounds `json:"bounds"`
}

type VizInitMessage struct {
	Type string             `json:"type"`
	Data VizInitMessageData `json:"data"`
}

func (vizgame *VizGame) SetWatcher(watcher *Watcher) {
	vizgame.pool.Set(watcher.GetId(), watcher)

	initMsg := VizInitMessage{
		Type: "init",
		Data: VizInitMessageData{
			Tps:    vizgame.server.GetTps(),
			Bounds: vizgame.server.GetGame().GetBounds(),
		},
	}

	err := watcher.WriteJSON(initMsg)
	if err != nil {
		utils.Debug("viz-server", "Could not send VizInitMessage JSON; "+err.Error())
	}
}

func (vizgame *VizGame) RemoveWatcher(watcherid string) {
	vizgame.pool.Remove(watcherid)
}

func (vizgame *VizGame) GetNumberWatchers() int {
	return vizgame.pool.Size()
}
