package main

import "github.com/tidepool-org/vitals/cmd/vitals/command"

func main() {
	command.Execute()
}
