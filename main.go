package main

import "github.com/notargets/gocubature/cmd"

func main() {
	cmd.Execute()
}
