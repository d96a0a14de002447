package main

import "github.com/mouse-blink/jsonreader/cmd"

func main() {
	cmd.Execute()
}
