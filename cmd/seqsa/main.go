// cmd/seqsa/main.go
package main

import (
	"seqsa/internal/app"
	"seqsa/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
