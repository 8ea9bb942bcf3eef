package main

import "harmonic/cmd"

func main() {
	cmd.Execute()
}
