package edgerc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/vitalvas/edgegrid/auth"
)

// DefaultPath is the conventional location of the credential file.
const DefaultPath = "~/.edgerc"

// DefaultSection is the section used when none is specified.
const DefaultSection = "default"

var (
	// ErrInvalidSection is returned when the requested section does not
	// exist in the .edgerc file. The wrapped message names the section.
	ErrInvalidSection = errors.New("edgerc: section not found")

	// ErrEnvMissing is returned when a required environment variable is
	// not set. The wrapped message names the variable.
	ErrEnvMissing = errors.New("edgerc: environment variable not set")
)

// Load resolves credentials for the named section, consulting AKAMAI_*
// environment variables first and the .edgerc file at path second.
func Load(path, section string) (*auth.Credentials, error) {
	if creds, err := LoadEnv(section); err == nil {
		return creds, nil
	}

	return LoadFile(path, section)
}

// LoadFile reads credentials for the named section from an .edgerc file.
// A leading "~" in path expands to the user home directory.
func LoadFile(path, section string) (*auth.Credentials, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("edgerc: read %s: %w", path, err)
	}

	sec, err := file.GetSection(section)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSection, section)
	}

	creds := auth.NewCredentials(
		sec.Key("client_token").String(),
		sec.Key("client_secret").String(),
		sec.Key("access_token").String(),
		sec.Key("host").String(),
	)

	creds.MaxBody = maxBody(sec)
	creds.AccountSwitchKey = sec.Key("account_switch_key").String()

	if err := creds.Validate(); err != nil {
		return nil, err
	}

	return creds, nil
}

// maxBody reads the body limit from a section. Both the documented
// "max-body" spelling and the legacy "max_body" are accepted.
func maxBody(sec *ini.Section) int {
	for _, name := range []string{"max-body", "max_body"} {
		if key, err := sec.GetKey(name); err == nil {
			if v, err := key.Int(); err == nil {
				return v
			}
		}
	}

	return 0
}

// expandHome resolves a leading "~" to the user home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("edgerc: resolve home directory: %w", err)
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
