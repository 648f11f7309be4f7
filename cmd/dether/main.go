package main

import "github.com/dethertech/dether-go/cmd"

func main() {
	cmd.Execute()
}
