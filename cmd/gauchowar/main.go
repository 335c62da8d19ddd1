package main

import "github.com/sbfarley/gauchowar/internal/cli"

func main() {
	cli.Execute()
}
