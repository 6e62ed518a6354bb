package main

import "github.com/KaramelBytes/rowsense-cli/cmd"

func main() {
	cmd.Execute()
}
