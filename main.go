package main

import "discbox/cmd"

func main() {
	cmd.Execute()
}
