package main

import "qb-sync/cmd"

func main() {
	cmd.Execute()
}
