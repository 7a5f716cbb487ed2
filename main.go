package main

import "fstree/cmd"

func main() {
	cmd.Execute()
}
