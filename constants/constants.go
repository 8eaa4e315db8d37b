package constants

import (
	"time"
)

const (
	AppName = "zebitex"

	EnvAccessKey = "ZEBITEX_ACCESS_KEY"
	EnvSecret    = "ZEBITEX_SECRET"
	EnvDev       = "ZEBITEX_DEV"
	EnvURL       = "ZEBITEX_URL"
	EnvLogLevel  = "ZEBITEX_LOG_LEVEL"

	DefaultEnvFile  = ".env"
	DefaultLogLevel = "info"
	DefaultTimeout  = 30 * time.Second
)
