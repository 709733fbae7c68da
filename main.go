package main

import "github.com/fakeyudi/tripline/cmd"

func main() {
	cmd.Execute()
}
