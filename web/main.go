package main

import (
	"flag"
	"log"

	"github.com/user/raycast/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port for the web server")
	flag.Parse()

	srv := server.NewServer(*port)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
