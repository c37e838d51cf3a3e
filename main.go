package main

import "github.com/theirongolddev/cspend/cmd"

func main() {
	cmd.Execute()
}
