package main

import (
	"log"
	"os"

	"github.com/minaorangina/setgame/internal/config"
	"github.com/minaorangina/setgame/server"
	"github.com/minaorangina/setgame/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err.Error())
	}

	s := server.NewServer(server.ServerOpts{
		Store:          store.NewInMemoryGameStore(),
		NewSource:      server.NewSourceFactory(cfg.Seed),
		AllowedOrigins: cfg.AllowedOrigins,
		StaticDir:      cfg.StaticDir,
		AccessLog:      os.Stdout,
	})
	s.Addr = cfg.Addr()

	log.Printf("Listening on %s...", s.Addr)
	log.Fatal(s.ListenAndServe())
}
