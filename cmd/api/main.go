package main

import (
	"go.uber.org/fx"

	appfx "github.com/baccarifarah/spendLog/internal/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
