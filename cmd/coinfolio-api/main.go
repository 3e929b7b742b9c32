package main

import (
	"fmt"

	"github.com/coinfolio/coinfolio/config"
	"github.com/coinfolio/coinfolio/models"
	"github.com/coinfolio/coinfolio/routes"
)

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	if err := models.Migrate(config.DataBase); err != nil {
		config.Logger.Fatalf("Migration failed: %v", err)
	}

	r := routes.SetupRouter()
	r.Listen(config.App.Listen)
}
