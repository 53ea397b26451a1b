package config

const (
	// DefaultConfigFile is read when neither a CLI argument nor KAIRO_CONFIG names one.
	DefaultConfigFile = "kairo.yml"
	// FallbackUsername is shown in the prompt when no username is known.
	FallbackUsername = "user"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "kairo"
)

// Config holds the session settings read from the config file.
type Config struct {
	Username    string `mapstructure:"username"`
	TarFilePath string `mapstructure:"tarFilePath"`
	LogFilePath string `mapstructure:"logFilePath"`
}

// Env holds process-level overrides read from KAIRO_* variables.
type Env struct {
	ConfigPath string `envconfig:"CONFIG" default:"kairo.yml"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	LogDev     bool   `envconfig:"LOG_DEV" default:"false"`
	Plain      bool   `envconfig:"PLAIN" default:"false"`
}

// DefaultEnv returns the environment settings used when no variable is set.
func DefaultEnv() Env {
	return Env{
		ConfigPath: DefaultConfigFile,
		LogLevel:   "info",
	}
}
