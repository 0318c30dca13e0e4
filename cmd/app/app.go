package main

import (
	"os"

	"github.com/DRSN-tech/freshcart-backend/internal/app"
	config "github.com/DRSN-tech/freshcart-backend/internal/cfg"
	"github.com/DRSN-tech/freshcart-backend/pkg/logger"
)

//	@title			FreshCart Store API
//	@version		1.0
//	@description	Витрина продуктового магазина: каталог, корзина, заказы.
//	@BasePath		/api/v1

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	if err := app.Run(cfg, log); err != nil {
		os.Exit(1)
	}
}
