package main

import "github.com/nfrund/hidaya/cmd/hidaya-cli/cmd"

func main() {
	cmd.Execute()
}
