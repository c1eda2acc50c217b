package main

import (
	"log"

	_ "go.uber.org/automaxprocs"

	"rentwise-backend/internal/shared/config"
	"rentwise-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()
	r := server.NewRouter(cfg)

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
