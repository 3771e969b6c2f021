package main

import (
	"os"

	"github.com/xgrid/ambassador-map/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
