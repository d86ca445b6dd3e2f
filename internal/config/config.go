package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	Port string `envconfig:"PORT" default:"8080"`
	// Path of the sqlite database file.
	DBPath string `envconfig:"JOBPORTAL_DB" default:"job_portal.db"`
	// Key used to authenticate session cookies.
	SessionSecret string `envconfig:"SESSION_SECRET" default:"secret"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
