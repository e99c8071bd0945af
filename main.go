package main

import "venus/internal/cli"

func main() {
	cli.Execute()
}
