package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/vietanh2810/canteen-api/cmd/app"
)

// @title        School Canteen API
// @version      1.0
// @description  Ordering, pricing and sales statistics for school canteen stands.
// @description  Students order from stands, stand admins manage menus and discounts.
//
// @BasePath  /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
