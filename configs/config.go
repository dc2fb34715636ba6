package configs

import (
	"errors"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config struct
type Config struct {
	App      `mapstructure:"app"`
	Game     `mapstructure:"game"`
	Postgres `mapstructure:"postgres"`
	Line     `mapstructure:"line"`
}

// App struct
type App struct {
	Debug bool   `mapstructure:"debug"`
	Env   string `mapstructure:"env"`
	Port  string `mapstructure:"port"`
}

// Game struct - zero values mean "use the built-in default"
type Game struct {
	Trigger         string `mapstructure:"trigger"`
	RestartCooldown int    `mapstructure:"restart_cooldown"` // seconds
	HistoryLimit    int    `mapstructure:"history_limit"`
}

// Postgres struct - an empty host keeps game records in memory
type Postgres struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DbName   string `mapstructure:"database"`
	SSLMode  bool   `mapstructure:"sslmode"`
}

// Line struct - an empty token disables the LINE webhook
type Line struct {
	ChannelSecret string `mapstructure:"channel_secret"`
	ChannelToken  string `mapstructure:"channel_token"`
}

// Enabled reports whether LINE credentials are configured
func (l Line) Enabled() bool {
	return l.ChannelSecret != "" && l.ChannelToken != ""
}

var config Config

// InitViper func
func InitViper(path, env string) {
	getConfig(path, env)
}

// GetViper func
func GetViper() *Config {
	return &config
}

// defaults mirror config.yaml so the environment alone can configure the server
var defaults = map[string]interface{}{
	"app.debug":             false,
	"app.env":               "local",
	"app.port":              "9089",
	"game.trigger":          "/ttt",
	"game.restart_cooldown": 120,
	"game.history_limit":    20,
	"postgres.host":         "",
	"postgres.port":         "5432",
	"postgres.username":     "postgres",
	"postgres.password":     "",
	"postgres.database":     "tictactoe",
	"postgres.sslmode":      false,
	"line.channel_secret":   "",
	"line.channel_token":    "",
}

func getConfig(path, env string) {
	viper.Reset()
	for key, value := range defaults {
		viper.SetDefault(key, value)
	}
	viper.SetConfigName("config")
	viper.AddConfigPath(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if env != "" {
		viper.Set("app.env", env)
	}
	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(err)
		}
		logrus.Warnf("No config file in %s, using environment only", path)
	} else {
		viper.WatchConfig()
		viper.OnConfigChange(func(e fsnotify.Event) {
			logrus.Infof("Config file has changed: %s", e.Name)
		})
	}
	config = Config{}
	err = viper.Unmarshal(&config)
	if err != nil {
		logrus.Fatalln(err)
	}
}
