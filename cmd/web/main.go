package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joeshaw/envdecode"

	"github.com/minaorangina/literature/server"
	"github.com/minaorangina/literature/store"
)

type config struct {
	Port     int           `env:"PORT,default=8000"`
	BotDelay time.Duration `env:"BOT_DELAY,default=2s"`
}

func main() {
	var cfg config
	if err := envdecode.Decode(&cfg); err != nil {
		log.Fatal(err.Error())
	}

	s := server.NewServer(store.NewInMemoryGameStore(), cfg.BotDelay)

	log.Printf("Listening on port %d...", cfg.Port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), s))
}
