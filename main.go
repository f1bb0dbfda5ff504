package main

import "github.com/alexist/gitflow/cmd"

func main() {
	cmd.Execute()
}
