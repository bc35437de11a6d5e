package main

import "github.com/lepinkainen/marvelgo/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
