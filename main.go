package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/bennington-rising/bennington-rising-api/api/handlers"

	"go.uber.org/zap"

	"github.com/bennington-rising/bennington-rising-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	err := a.Initialize() //initialize database and router
	if err != nil {
		log.Fatal(err)
	}

	a.Scheduler.Start()
	defer a.Scheduler.Stop()

	port := os.Getenv("PORT")
	baseURL := os.Getenv("BASE_URL")
	zap.S().Infow("bennington-rising-api is up and running",
		"port", port,
		"url", baseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), a.Router))
}
