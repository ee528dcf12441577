package util

import (
	"os"
	"strings"
)

var (
	isDebug *bool
)

func IsDebug() bool {
	if isDebug == nil {
		composeDebug := os.Getenv("COMPOSE_DEBUG")
		d := composeDebug == "1" || strings.EqualFold(composeDebug, "true")
		isDebug = &d
	}

	return *isDebug
}
