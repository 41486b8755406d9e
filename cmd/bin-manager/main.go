package main

import (
	fyneapp "fyne.io/fyne/v2/app"

	"github.com/ytget/warehouse-bins/internal/app"
	"github.com/ytget/warehouse-bins/internal/config"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	app.Run(fyneapp.NewWithID(config.AppID), version)
}
