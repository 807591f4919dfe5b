package main

import "alcatelz/cmd/client/cmd"

func main() {
	cmd.Execute()
}
