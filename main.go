package main

import "github.com/crillab/gophercnf/cmd"

func main() {
	cmd.Execute()
}
