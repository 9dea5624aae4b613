package main

import "github.com/THPTUHA/todoweb/server/cmd"

func main() {
	cmd.Execute()
}
