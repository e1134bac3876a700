// cmd/fastaidx/main.go
package main

import (
	"fastaidx/internal/app"
	"fastaidx/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
