package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: worker validate|tags <catalog.json|url>")
	}

	switch os.Args[1] {
	case "validate":
		RunValidate(os.Args[2:])
	case "tags":
		RunTags(os.Args[2:])
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
}
