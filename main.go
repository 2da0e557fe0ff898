package main

import "stacklaunch/cmd"

func main() {
	cmd.Execute()
}
