package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// AppConfig 应用启动配置
// 优先级：命令行参数 > 环境变量 (MEMORY_*) > 配置文件 > 默认值
type AppConfig struct {
	LevelsFile string `mapstructure:"levels_file" validate:"required"`
	StartLevel int    `mapstructure:"start_level" validate:"min=1"`
	Seed       int64  `mapstructure:"seed"` // 0 表示使用随机种子
	Verbose    bool   `mapstructure:"verbose"`
	Fullscreen bool   `mapstructure:"fullscreen"`
}

// EnvPrefix 环境变量前缀
const EnvPrefix = "MEMORY"

// LoadAppConfig 加载应用配置
//
// 参数：
//   - configFile: 配置文件路径，为空时在当前目录和 $HOME/.config/memorymatch 中查找 memory.yaml（可选）
//
// 返回：
//   - *AppConfig: 解析并验证后的配置
//   - error: 配置文件解析失败或验证失败
func LoadAppConfig(configFile string) (*AppConfig, error) {
	v := viper.New()

	v.SetDefault("levels_file", DefaultLevelsFile)
	v.SetDefault("start_level", 1)
	v.SetDefault("seed", 0)
	v.SetDefault("verbose", false)
	v.SetDefault("fullscreen", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("memory")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/memorymatch")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// 未指定文件且默认位置不存在配置文件时使用默认值
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read app config: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal app config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid app config: %w", err)
	}

	return &cfg, nil
}
