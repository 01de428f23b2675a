package main

import (
	"log"

	"github.com/htoohtoo/storefront/internal/server"
)

func main() {
	if err := server.Start(); err != nil {
		log.Fatal(err)
	}
}
