package configs

import (
	"os"
	"path/filepath"

	"github.com/PolarWolf314/shush/internal/utils"
)

// ConfigPathEnv overrides the config file location.
const ConfigPathEnv = "SHUSH_CONFIG"

type UserSettings struct {
	UserConfigsPath string
	Username        string
}

var UserShushSettings *UserSettings

func init() {
	// A missing config dir or user only disables the defaults that need them.
	configDir, err := os.UserConfigDir()
	if err == nil {
		configDir = filepath.Join(configDir, "shush")
	}

	username, err := utils.GetUsername()
	if err != nil {
		username = ""
	}

	UserShushSettings = &UserSettings{
		UserConfigsPath: configDir,
		Username:        username,
	}
}

// DefaultConfigPath returns $SHUSH_CONFIG, or config.toml in the user config
// directory. Empty when neither can be determined.
func DefaultConfigPath() string {
	if path := os.Getenv(ConfigPathEnv); path != "" {
		return path
	}
	if UserShushSettings.UserConfigsPath == "" {
		return ""
	}
	return filepath.Join(UserShushSettings.UserConfigsPath, "config.toml")
}
