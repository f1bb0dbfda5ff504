// Example program demonstrating the gitflow library API.
//
// Run from the root of a Maven project that follows the git-flow branch
// model:
//
//	go run ./example/ my-feature
package main

import (
	"log"
	"os"

	"github.com/alexist/gitflow/pkg/gitflow"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: example <feature-name>")
	}
	name := os.Args[1]

	client, err := gitflow.New(gitflow.Options{
		Path:   ".",
		Output: os.Stdout,
	})
	if err != nil {
		log.Fatalf("opening repository: %v", err)
	}

	if err := client.FeatureStart(gitflow.FeatureStartOptions{Name: name}); err != nil {
		log.Fatalf("starting feature: %v", err)
	}
}
