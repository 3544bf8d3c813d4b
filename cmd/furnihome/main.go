package main

import "github.com/Skotchmaster/furnihome/internal/cmd"

func main() {
	cmd.Execute()
}
