package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/courtwatchhq/courtwatch-api/cmd/app"
)

// @title           CourtWatch API
// @description     Civic engagement API for tracking judges, court cases and hearing attendance.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token issued by the identity provider
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
