package main

import "github.com/mouse-blink/watchman/cmd"

func main() {
	cmd.Execute()
}
