package main

import (
	"log"
	"os"

	"structwalk/internal/walkthrough"
)

func main() {
	// Run the two walkthroughs in order: construction first, then
	// behavior attachment. Together they print the full transcript.
	if err := walkthrough.Structs(os.Stdout); err != nil {
		log.Fatalf("write transcript: %v", err)
	}
	if err := walkthrough.Methods(os.Stdout); err != nil {
		log.Fatalf("write transcript: %v", err)
	}
}
