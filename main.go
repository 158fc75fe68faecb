package main

import "github.com/pders01/belt/cmd"

func main() {
	cmd.Execute()
}
