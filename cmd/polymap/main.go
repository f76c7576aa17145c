package main

import "github.com/ngeo/polymap/cmd/polymap/cmd"

func main() {
	cmd.Execute()
}
