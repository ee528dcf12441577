package main

import (
	"github.com/sisense/compose-sdk-charts/pkg/cli/cmd"
)

func main() {
	cmd.Execute()
}
