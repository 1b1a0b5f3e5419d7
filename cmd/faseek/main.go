// cmd/faseek/main.go
package main

import (
	"faseek/internal/app"
	"faseek/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
