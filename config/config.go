package config

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds the project config values
type Config struct {
	URL             string
	DatabaseName    string
	BaseURL         string
	FrontendBaseURL string
	Port            string
	SendgridAPIKey  string
}

// New sets up all config related services
func New() *Config {

	// load a local .env if one exists, real deployments set env vars directly
	_ = godotenv.Load()

	//setup zap logger and replace default logger
	logger, err := setLogger(os.Getenv("APP_ENV"))
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		URL:             os.Getenv("DB_URI"),
		DatabaseName:    os.Getenv("DB_NAME"),
		BaseURL:         os.Getenv("BASE_URL"),
		FrontendBaseURL: os.Getenv("FRONTEND_BASE_URL"),
		Port:            os.Getenv("PORT"),
		SendgridAPIKey:  os.Getenv("SENDGRID_API_KEY"),
	}

}

// setLogger picks the zap preset for the given environment. Anything that is
// not development or production gets the example logger for readable local runs.
func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "development":
		return zap.NewDevelopment()
	case "production":
		return zap.NewProduction()
	default:
		return zap.NewExample(), nil
	}
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	w.WriteHeader(httpStatusCode)
	w.Write([]byte(fmt.Sprintf(`{"response": "%s, %v"}`, message, err)))
}
