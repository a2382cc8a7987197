package main

import "github.com/bjaus/melt/pkg/cmd"

func main() {
	cmd.Execute()
}
