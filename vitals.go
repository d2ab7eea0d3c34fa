package main

import "github.com/tidepool-org/vitals/api"

func main() {
	api.MainLoop()
}
