package main

import "github.com/salmanakber/mayaopps-sub001/cmd"

func main() {
	cmd.Execute()
}
