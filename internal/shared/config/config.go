package config

import (
	"os"

	"gopkg.in/ini.v1"
	"wsgreet/internal/shared/types"
)

// LoadIni 只加载 wsgreet.ini 行为配置文件。
func LoadIni(cfg *types.Config, fileName string) error {
	iniFile, err := ini.Load(fileName)
	if err != nil {
		return err
	}
	if err := iniFile.MapTo(cfg); err != nil {
		return err
	}
	overrideFromEnvString(&cfg.ServerConf.ListenAddr, "WSGREET_LISTEN_ADDR")
	applyDefaults(cfg)
	return nil
}

func applyDefaults(cfg *types.Config) {
	if cfg.ServerConf.ListenAddr == "" {
		cfg.ServerConf.ListenAddr = "127.0.0.1:9080"
	}
	if cfg.ServerConf.WSPath == "" {
		cfg.ServerConf.WSPath = "/ws"
	}
}

func overrideFromEnvString(target *string, envName string) {
	envValue := os.Getenv(envName)
	if envValue != "" {
		*target = envValue
	}
}
