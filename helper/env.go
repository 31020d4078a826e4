package helper

import (
	"os"
)

// ReadValueFromEnvWithDefault will read the value of name from the environment.
// If it's not set then it will apply the supplied defaultValue.
func ReadValueFromEnvWithDefault(name string, defaultValue string) string {
	if v := os.Getenv(name); v != "" { // if the environment variable was set...
		return v
	}
	return defaultValue
}
