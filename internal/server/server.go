package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"github.com/prysms/draw-backend/internal/game"
	"github.com/prysms/draw-backend/internal/ledger"
)

type Server struct {
	port   int
	engine *game.Engine
	log    zerolog.Logger
}

// NewServer wires the game engine and its ledger client from the
// environment and returns a ready-to-listen HTTP server.
func NewServer(log zerolog.Logger) *http.Server {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 5000
	}

	rec := ledger.NewClient(os.Getenv("LEDGER_URL"), log)
	s := &Server{
		port:   port,
		engine: game.NewEngine(game.DefaultConfig(), rec, log),
		log:    log,
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}
