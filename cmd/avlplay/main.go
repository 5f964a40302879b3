// Command avlplay replays AVL insert sequences and scenario files and prints
// the resulting trees.
//
//	avlplay seq 60 50 40 30 20 10 9
//	avlplay run scenario/testdata/*.yaml
//	avlplay --verbose --layout levels seq 1 2 3
package main

import (
	"log"
	"os"
)

const version = "v0.1.0"

func main() {
	log.SetPrefix("avlplay: ")
	log.SetFlags(0)

	if err := newRootCmd().Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}
