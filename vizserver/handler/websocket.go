package handler

import (
	"encoding/json"
	"net/http"

	notify "github.com/bitly/go-notify"
	"github.com/ballarena/ballarena/common/utils"
	"github.com/ballarena/ballarena/vizserver/types"
	"github.com/gorilla/websocket"
)

type wsincomingmessage struct {
	messageType int
	p           []byte
	err         error
}

// Wire shape of the input messages sent by the viz client.
type playerIntentMessage struct {
	Method    string    `json:"method"`
	Arguments []float64 `json:"arguments"`
}

type vizFrameMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func Websocket(vizgame *types.VizGame) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {

		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		}

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			utils.Debug("viz-server", "Could not upgrade websocket connection; "+err.Error())
			return
		}

		watcher := types.NewWatcher(c)
		vizgame.SetWatcher(watcher)

		defer func(c *websocket.Conn) {
			vizgame.RemoveWatcher(watcher.GetId())
			c.Close()
		}(c)

		clientclosedsocket := make(chan bool)
		c.SetCloseHandler(func(code int, text string) error {
			clientclosedsocket <- true
			return nil
		})

		// Les messages entrants sont les intentions du joueur; ils alimentent
		// le MaitreDesActions sans jamais toucher le monde directement
		incomingmsg := make(chan wsincomingmessage)
		go func(client *websocket.Conn, ch chan wsincomingmessage) {
			for {
				messageType, p, err := client.ReadMessage()
				ch <- wsincomingmessage{messageType, p, err}
				if err != nil {
					return
				}
			}
		}(c, incomingmsg)

		// Listen to frames coming from the arena server tick loop
		vizmsgchan := make(chan interface{})
		notify.Start("viz:message", vizmsgchan)
		defer notify.Stop("viz:message", vizmsgchan)

		for {
			select {
			case <-clientclosedsocket:
				{
					utils.Debug("viz-server", "Watcher "+watcher.GetId()+" closed the connection")
					return
				}
			case msg := <-incomingmsg:
				{
					if msg.err != nil {
						utils.Debug("viz-server", "Watcher "+watcher.GetId()+" connection lost")
						return
					}

					handlePlayerIntent(vizgame, msg.p)
				}
			case vizmsg := <-vizmsgchan:
				{
					vizmsgString, ok := vizmsg.(string)
					utils.Assert(ok, "Failed to cast vizmessage into string")

					watcher.WriteJSON(vizFrameMessage{
						Type: "frame",
						Data: json.RawMessage(vizmsgString),
					})
				}
			}
		}
	}
}

// handlePlayerIntent translates one wire message into action controller calls.
// Unknown methods and malformed payloads are logged and dropped, never fatal.
func handlePlayerIntent(vizgame *types.VizGame, payload []byte) {

	var intent playerIntentMessage
	if err := json.Unmarshal(payload, &intent); err != nil {
		utils.Debug("viz-server", "Failed to decode player intent; "+err.Error())
		return
	}

	actions := vizgame.GetServer().GetGame().GetActionController()

	switch intent.Method {
	case "move":
		if len(intent.Arguments) == 2 {
			actions.SetMovement(intent.Arguments[0], intent.Arguments[1])
		}
	case "stopmove":
		if len(intent.Arguments) == 2 {
			actions.StopMovement(intent.Arguments[0], intent.Arguments[1])
		}
	case "grab":
		actions.RequestPickupOrDrop()
	default:
		utils.Debug("viz-server", "Unknown player intent method "+intent.Method)
	}
}
