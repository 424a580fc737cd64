package vizserver

import (
	"net/http"
	"os"

	"log"

	"github.com/ballarena/ballarena/arenaserver"
	apphandler "github.com/ballarena/ballarena/vizserver/handler"
	"github.com/ballarena/ballarena/vizserver/types"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type VizService struct {
	addr    string
	vizgame *types.VizGame
}

func NewVizService(addr string, server *arenaserver.Server) *VizService {
	return &VizService{
		addr:    addr,
		vizgame: types.NewVizGame(server),
	}
}

func (viz *VizService) ListenAndServe() error {

	logger := os.Stdout
	router := mux.NewRouter()

	router.Handle("/", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Home(viz.vizgame)),
	)).Methods("GET")

	router.Handle("/ws", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Websocket(viz.vizgame)),
	)).Methods("GET")

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}).Methods("GET")

	log.Println("VIZ Listening on " + viz.addr)

	return http.ListenAndServe(viz.addr, router)
}
