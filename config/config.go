package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI string
	MongoDB  string
	Port     string

	JWTSecret string

	FrontendOrigins string

	MailHost     string
	MailPort     string
	MailUsername string
	MailPassword string
	MailFrom     string

	ReportFontPath string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func LoadConfig() Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file")
	}

	cfg := Config{
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "dsrDatabase"),
		Port:     getEnv("PORT", "5000"),

		JWTSecret: getEnv("ACCESS_TOKEN_SECRET", ""),

		FrontendOrigins: getEnv("FRONTEND_URL", "http://localhost:5173"),

		MailHost:     getEnv("MAILER_HOST", "smtp.gmail.com"),
		MailPort:     getEnv("MAILER_PORT", "587"),
		MailUsername: getEnv("MAILER_AUTH_ID", ""),
		MailPassword: getEnv("MAILER_AUTH_PASS", ""),
		MailFrom:     getEnv("MAILER_FROM_ID", ""),

		ReportFontPath: getEnv("REPORT_FONT_PATH", "./config/LiberationSans-Regular.ttf"),
	}
	return cfg
}

// CheckReportFont verifies the TTF behind REPORT_FONT_PATH exists. Report
// generation needs it; better to refuse to start than to 500 on the first
// export.
func (c Config) CheckReportFont() error {
	_, err := os.Stat(c.ReportFontPath)
	return err
}
