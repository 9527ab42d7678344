package main

import "github.com/snipmux/snipmux/cmd"

func main() {
	cmd.Execute()
}
