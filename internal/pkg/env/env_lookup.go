package env

import (
	"os"
	"time"
)

func TrySetFromEnv(envName string, val *string) {
	if envVal, found := os.LookupEnv(envName); found {
		*val = envVal
	}
}

// TrySetDurationFromEnv overwrites val only when the variable is set and parses
// as a time.Duration ("5s", "250ms").
func TrySetDurationFromEnv(envName string, val *time.Duration) {
	envVal, found := os.LookupEnv(envName)
	if !found {
		return
	}

	if parsed, err := time.ParseDuration(envVal); err == nil {
		*val = parsed
	}
}
