package main

import "github.com/dt-pm-tools/ticket-transfer/cmd"

func main() {
	cmd.Execute()
}
