package main

import "rimeskin/cmd"

func main() {
	cmd.Execute()
}
