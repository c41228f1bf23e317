// config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	API     APIConfiguration
	Session SessionConfiguration
	List    ListConfiguration
	Export  ExportConfiguration
}

// APIConfiguration stores the backend connection settings
type APIConfiguration struct {
	BaseURL string
}

// SessionConfiguration stores where the bearer token is read from
type SessionConfiguration struct {
	TokenEnv string
}

// ListConfiguration stores list view defaults
type ListConfiguration struct {
	PageSize int
}

// ExportConfiguration stores report export settings
type ExportConfiguration struct {
	OutputDir string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.AutomaticEnv() // read in environment variables that match

	// Set default configurations
	viper.SetDefault("api.baseURL", "http://localhost:8000")
	viper.SetDefault("session.tokenEnv", "EPC_CONSOLE_TOKEN")
	viper.SetDefault("list.pageSize", 10)
	viper.SetDefault("export.outputDir", ".")
	viper.SetDefault("log.dir", "")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}
