package main

import "github.com/Fletch-Industries/immutify/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
