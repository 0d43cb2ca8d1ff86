package config

import (
	"os"
	"path/filepath"

	"github.com/go-spindle/spindle/lib/util"
	"github.com/go-spindle/spindle/lib/util/logger"
	"github.com/spf13/viper"
)

var (
	CfgFile string
	log     = logger.GetLogger()
)

const SPINDLE_BASE_DIR = ".spindle"

// InitConfig loads the site configuration layer: compiled defaults, then
// $HOME/.spindle/config.yaml (or the file named by CfgFile), then SPINDLE_*
// environment variables. The command line is resolved on top of the result.
func InitConfig() {
	if CfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(CfgFile)
	} else {
		// Set up viper to use the default config path $HOME/.spindle/
		viper.AddConfigPath(BuildSpindleDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("SPINDLE")
	viper.AutomaticEnv()

	// Load defaults
	setDefaults()

	// handle config file creating it if needed
	handleConfigFile()
}

func setDefaults() {
	viper.SetDefault("port", defaultDefaults.Port)
	viper.SetDefault("location", defaultDefaults.LocationRoot)
	viper.SetDefault("python_prefixes", defaultDefaults.PythonPrefixes)
	viper.SetDefault("security_model", defaultDefaults.Security.String())
	viper.SetDefault("usage_logging", defaultDefaults.LoggingEnabled)
}

// DefaultsFromViper builds the resolution seed from current viper settings.
// The security model name is validated against the compiled-in set so a
// typo in the config file fails before any option is processed.
func DefaultsFromViper() (Defaults, error) {
	security, err := ParseSecurityModel(viper.GetString("security_model"))
	if err != nil {
		return Defaults{}, err
	}

	return Defaults{
		Port:           viper.GetInt("port"),
		LocationRoot:   viper.GetString("location"),
		PythonPrefixes: viper.GetString("python_prefixes"),
		Security:       security,
		LoggingEnabled: viper.GetBool("usage_logging"),
	}, nil
}

func createDefaultConfig(defaultConfigDir string) {
	defaultConfigFile := filepath.Join(defaultConfigDir, "config.yaml")
	// Ensure directory exists
	if err := os.MkdirAll(defaultConfigDir, 0o755); err != nil {
		log.Fatalf("Could not create config directory: %s", err)
	}

	// Write current config file
	if err := viper.SafeWriteConfigAs(defaultConfigFile); err != nil {
		log.Fatalf("Could not write default config file: %s", err)
	}

	log.Debugf("Created default configuration at: %s", defaultConfigFile)
}

func handleConfigFile() {
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if CfgFile != "" {
				log.Fatalf("Config file %s is not found: %s", CfgFile, err)
			} else {
				createDefaultConfig(BuildSpindleDirPath())
			}
		} else {
			log.Fatalf("Error reading config file: %s", err)
		}
	} else {
		log.Debugf("Using config file: %s", viper.ConfigFileUsed())
	}
}

func BuildSpindleDirPath() string {
	return filepath.Join(util.UserHome(), SPINDLE_BASE_DIR)
}
