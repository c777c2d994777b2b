package main

import (
	"github.com/nfrund/collectives/internal/server"
)

func main() {
	s := server.New()
	s.Start()
}
