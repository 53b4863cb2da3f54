package main

import (
	"github.com/angeroddy/sceno-app-sub001/internal/app"
)

func main() {
	app.Run()
}
