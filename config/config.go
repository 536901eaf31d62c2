package config

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/spf13/viper"

	"reactive-todo-backend/pkg/util/environment"
)

type config struct {
	AppEnv   string
	AppName  string
	Database struct {
		Driver          string
		User            string
		Password        string
		Addr            string
		Port            string
		DBName          string
		SSLMode         string
		DSN             string
		MaxConns        int32
		MinConns        int32
		MaxConnLifetime time.Duration
		Debug           bool
	}
	Server struct {
		Address         string
		ShutdownTimeout time.Duration
	}
	Log struct {
		Level       string
		Development bool
	}
	Seed struct {
		Enabled bool
	}
}

// C is config variable
var C config

// ReadConfigOption is a config option
type ReadConfigOption struct {
	AppEnv string
}

// ReadConfig configures config file
func ReadConfig(option ReadConfigOption) {
	Config := &C

	viper.Reset()

	e := appEnv(option)

	switch e {
	case environment.Test:
		setConfigName("config.test")
	case environment.E2E:
		setConfigName("config.e2e")
	case environment.Staging:
		setConfigName("config.staging")
	case environment.Development:
		setConfigName("config")
	default:
		setConfigName("config.production")
	}

	viper.SetConfigType("yml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalln(err)
	}

	if err := viper.Unmarshal(&Config); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if C.AppEnv == "" {
		C.AppEnv = e
	}

	if C.AppEnv != environment.Production {
		spew.Dump(C)
	}
}

func appEnv(option ReadConfigOption) string {
	if option.AppEnv != "" {
		return option.AppEnv
	}
	if os.Getenv("APP_ENV") != "" {
		return os.Getenv("APP_ENV")
	}

	return environment.Development
}

func rootDir() string {
	_, b, _, _ := runtime.Caller(0)
	d := path.Join(path.Dir(b))
	return filepath.Dir(d)
}

func setConfigName(name string) {
	viper.AddConfigPath(filepath.Join(rootDir(), "config"))
	viper.SetConfigName(name)
}
