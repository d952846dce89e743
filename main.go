package main

import (
	"striderun.dev/backend/cmd/app"
)

func main() {
	app.Run()
}
