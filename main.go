package main

import "github.com/notargets/sem1d/cmd"

func main() {
	cmd.Execute()
}
