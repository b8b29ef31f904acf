package main

import "github.com/jsphweid/motif/cmd"

func main() {
	cmd.Execute()
}
