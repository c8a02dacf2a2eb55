package main

import "github.com/mrenard/pointage/cmd"

func main() {
	cmd.Execute()
}
