package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

func joinHostPort(host string, port uint16) string {
	return fmt.Sprintf("%s:%d", host, port)
}

// ServerConfig ...
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// ListenAddr ...
func (c ServerConfig) ListenAddr() string {
	return joinHostPort(c.Host, c.Port)
}

// MetricsConfig ...
type MetricsConfig struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// ListenAddr ...
func (c MetricsConfig) ListenAddr() string {
	return joinHostPort(c.Host, c.Port)
}

// JaegerConfig ...
type JaegerConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
}

// Config ...
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	MySQL   MySQLConfig   `mapstructure:"mysql"`
	Log     LogConfig     `mapstructure:"log"`
	Jaeger  JaegerConfig  `mapstructure:"jaeger"`
	Twilio  TwilioConfig  `mapstructure:"twilio"`
}

// Load reads config.yml from the working directory, with environment
// variable overrides
func Load() Config {
	vip := newViper()
	vip.AddConfigPath(".")
	return loadConfig(vip)
}

// LoadTestConfig reads config_test.yml from the repository root, used
// by the integration test harness
func LoadTestConfig(rootDir string) Config {
	vip := newViper()
	vip.SetConfigName("config_test")
	vip.AddConfigPath(filepath.Join(rootDir))
	return loadConfig(vip)
}

func newViper() *viper.Viper {
	vip := viper.New()
	vip.SetConfigName("config")
	vip.SetConfigType("yml")
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()
	return vip
}

func loadConfig(vip *viper.Viper) Config {
	err := vip.ReadInConfig()
	if err != nil {
		panic(err)
	}

	var conf Config
	err = vip.Unmarshal(&conf)
	if err != nil {
		panic(err)
	}
	return conf
}
