package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var Conf *viper.Viper

func init() {
	Conf = viper.New()

	// defaults
	Conf.SetTypeByDefaultValue(true)
	Conf.SetDefault("debug", true)
	Conf.SetDefault("appName", "ExamEval")
	Conf.SetDefault("apiBaseUrl", "http://localhost:8000")
	Conf.SetDefault("mockApiAddress", ":8000")
	Conf.SetDefault("requestTimeout", time.Duration(0)) // 0 = no timeout
	Conf.SetDefault("allowAnonymous", false)
	Conf.SetDefault("anonymousToken", "dummy-token")
	Conf.SetDefault("prefsPath", defaultPrefsPath())
	Conf.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	Conf.SetDefault("secretKey", "x1dk-wer)enb$+57=dz&uoxh2(h!x)#*c2(#yg4h^$cegm2emy")
	Conf.SetDefault("seedTeacherUsername", "teacher")
	Conf.SetDefault("seedTeacherPassword", "passwd")

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		Conf.SetDefault("testMode", true)
	}
	Conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	Conf.AutomaticEnv()
}

func defaultPrefsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".exameval.json"
	}
	return filepath.Join(home, ".exameval.json")
}
