package configs

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type ENV struct {
	Port       string
	AppEnv     string
	DBPath     string
	SessionKey string
	AppAuthKey string
	AppEncKey  string
	CSRFKey    string
	UploadDir  string
}

func LoadEnv() ENV {

	if err := godotenv.Load(".env"); err != nil {
		log.Warn().Msg("No .env file found")
	}

	env := ENV{
		Port:       os.Getenv("APP_PORT"),
		AppEnv:     os.Getenv("APP_ENV"),
		DBPath:     os.Getenv("DB_PATH"),
		SessionKey: os.Getenv("SESSION_KEY"),
		AppAuthKey: os.Getenv("APP_AUTH_KEY"),
		AppEncKey:  os.Getenv("APP_ENC_KEY"),
		CSRFKey:    os.Getenv("CSRF_KEY"),
		UploadDir:  os.Getenv("UPLOAD_DIR"),
	}

	if env.Port == "" {
		env.Port = ":8080"
	}
	if env.AppEnv == "" {
		env.AppEnv = "development"
	}
	if env.DBPath == "" {
		env.DBPath = "catalog.db"
	}
	if env.UploadDir == "" {
		env.UploadDir = "wwwroot/files"
	}

	return env
}

var LoadENV = LoadEnv()
