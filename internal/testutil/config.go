package testutil

import (
	"testing"

	"github.com/spf13/viper"
)

// marvelEnv lists the environment variables the configuration layer reads.
var marvelEnv = []string{
	"MARVEL_PUBLIC_KEY",
	"MARVEL_PRIVATE_KEY",
	"MARVEL_BASE_URL",
	"MARVEL_CACHE_BACKEND",
	"MARVEL_CACHE_DBFILE",
}

// ResetConfig resets viper and clears Marvel environment variables for the
// duration of the test.
func ResetConfig(t *testing.T) {
	t.Helper()

	viper.Reset()
	for _, name := range marvelEnv {
		t.Setenv(name, "")
	}
	t.Cleanup(viper.Reset)
}

// SetTestKeys resets the configuration and installs a test key pair.
func SetTestKeys(t *testing.T, public, private string) {
	t.Helper()

	ResetConfig(t)
	viper.Set("marvel.public_key", public)
	viper.Set("marvel.private_key", private)
}
