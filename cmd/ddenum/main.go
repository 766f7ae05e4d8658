package main

import (
	"github.com/l0lsec/datadogenumerator/cmd/ddenum/commands"
)

func main() {
	commands.Execute()
}
