package main

import (
	"log"
	"os"

	"github.com/medivac/portal/mock"
)

func main() {
	if err := mock.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
