/*
	Copyright 2025 msimtools
*/

package main

import (
	"github.com/msimtools/motorsport-session-manager-go/cmd"
	"github.com/msimtools/motorsport-session-manager-go/log"
)

func main() {
	defer func() { _ = log.Sync() }()
	cmd.Execute()
}
