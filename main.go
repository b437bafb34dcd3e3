package main

import "gyanguru/cmd"

func main() {
	cmd.Execute()
}
