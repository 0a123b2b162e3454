package main

import (
	"log"

	"agensi-backend/internal/api"

	_ "agensi-backend/docs"
)

// @title Agensi Backend API
// @version 1.0
// @description Back office API for a freelance services agency: ledger, franchises, freelance orders, workers and account management.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Provider-issued access token, prefixed with "Bearer ".

func main() {
	log.Println("App start")
	api.StartServer()
	log.Println("App terminated")
}
