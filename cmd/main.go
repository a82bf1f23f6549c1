package main

import (
	"github.com/consensys/predsel/pkg/cmd"
)

func main() {
	cmd.Execute()
}
