package main

import "slimdx-generator/internal/cli"

func main() {
	cli.Execute()
}
