package edgerc

import (
	"fmt"
	"os"
	"strings"

	"github.com/vitalvas/edgegrid/auth"
)

// envPrefix returns the environment variable prefix for a section:
// "AKAMAI_" for the default section, "AKAMAI_<SECTION>_" otherwise.
func envPrefix(section string) string {
	if section == "" || strings.EqualFold(section, DefaultSection) {
		return "AKAMAI_"
	}

	return "AKAMAI_" + strings.ToUpper(section) + "_"
}

// LoadEnv resolves credentials for the named section from environment
// variables.
func LoadEnv(section string) (*auth.Credentials, error) {
	prefix := envPrefix(section)

	host, err := requireEnv(prefix + "HOST")
	if err != nil {
		return nil, err
	}

	clientToken, err := requireEnv(prefix + "CLIENT_TOKEN")
	if err != nil {
		return nil, err
	}

	clientSecret, err := requireEnv(prefix + "CLIENT_SECRET")
	if err != nil {
		return nil, err
	}

	accessToken, err := requireEnv(prefix + "ACCESS_TOKEN")
	if err != nil {
		return nil, err
	}

	creds := auth.NewCredentials(clientToken, clientSecret, accessToken, host)

	if err := creds.Validate(); err != nil {
		return nil, err
	}

	return creds, nil
}

func requireEnv(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrEnvMissing, name)
	}

	return value, nil
}
