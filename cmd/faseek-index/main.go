// cmd/faseek-index/main.go
package main

import (
	"faseek/internal/appshell"
	"faseek/internal/indexapp"
)

func main() {
	appshell.Main(indexapp.RunContext)
}
