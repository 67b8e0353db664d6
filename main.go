package main

import "github.com/nicferrier/nicrisp/cmd"

func main() {
	cmd.Execute()
}
