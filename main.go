package main

import "pidboard/cmd"

func main() {
	cmd.Execute()
}
