package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/decker502/memorymatch/pkg/embedded"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ScoreTableSize 连续配对得分表长度（连击数 0~4）
const ScoreTableSize = 5

// DefaultLevelsFile 默认关卡配置文件（嵌入资源）
const DefaultLevelsFile = "data/levels.yaml"

// CardValue 卡牌值（如 "card3"），同一关卡中每个值恰好对应两张卡牌
type CardValue string

// Label 牌面显示的短文本
// "card3" 显示为 "3"，其他值原样显示
func (v CardValue) Label() string {
	if label, ok := strings.CutPrefix(string(v), "card"); ok && label != "" {
		return label
	}
	return string(v)
}

// LevelConfig 单个关卡的配置
type LevelConfig struct {
	Cols    int         `yaml:"cols" validate:"required,min=1"`    // 网格列数
	Rows    int         `yaml:"rows" validate:"required,min=1"`    // 网格行数
	Timeout int         `yaml:"timeout" validate:"required,min=1"` // 倒计时（秒）
	Cards   []CardValue `yaml:"cards" validate:"required,min=1,unique,dive,required"`
}

// CardCount 返回本关实例化后的卡牌总数
func (lc LevelConfig) CardCount() int {
	return len(lc.Cards) * 2
}

// CheckGrid 检查网格尺寸是否与卡牌数量匹配
// cols*rows 必须等于卡牌值数量的两倍
func (lc LevelConfig) CheckGrid() error {
	if lc.Cols*lc.Rows != lc.CardCount() {
		return fmt.Errorf("grid %dx%d has %d cells but %d card values need %d",
			lc.Cols, lc.Rows, lc.Cols*lc.Rows, len(lc.Cards), lc.CardCount())
	}
	return nil
}

// GameConfig 全部关卡配置和得分表
// 加载后只读
type GameConfig struct {
	Levels        []LevelConfig `yaml:"levels" validate:"required,min=1,dive"`
	ScoreByStreak []int         `yaml:"scoreByStreak" validate:"len=5,dive,min=0"`
}

// LevelCount 返回已配置的关卡数量
func (gc *GameConfig) LevelCount() int {
	return len(gc.Levels)
}

// Level 返回指定关卡（从1开始）的配置
// 超出范围的关卡号会被限制到 [1, LevelCount]
func (gc *GameConfig) Level(level int) LevelConfig {
	return gc.Levels[gc.ClampLevel(level)-1]
}

// ClampLevel 将关卡号限制到已配置范围内
func (gc *GameConfig) ClampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > len(gc.Levels) {
		return len(gc.Levels)
	}
	return level
}

// StreakScore 返回连击数对应的得分，连击数被限制在 [0,4]
func (gc *GameConfig) StreakScore(streak int) int {
	return gc.ScoreByStreak[ClampStreak(streak)]
}

// ClampStreak 将连击数限制在得分表范围内
func ClampStreak(streak int) int {
	if streak < 0 {
		return 0
	}
	if streak > ScoreTableSize-1 {
		return ScoreTableSize - 1
	}
	return streak
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate 验证关卡配置的完整性和合法性
func (gc *GameConfig) Validate() error {
	if err := validate.Struct(gc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (param %q)", fe.Namespace(), fe.Tag(), fe.Param()))
			}
			return fmt.Errorf("invalid game config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid game config: %w", err)
	}

	for i, level := range gc.Levels {
		if err := level.CheckGrid(); err != nil {
			return fmt.Errorf("level %d: %w", i+1, err)
		}
	}
	return nil
}

// ParseGameConfig 解析并验证 YAML 格式的关卡配置
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var gc GameConfig
	if err := yaml.Unmarshal(data, &gc); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}
	if err := gc.Validate(); err != nil {
		return nil, err
	}
	return &gc, nil
}

// LoadGameConfig 加载关卡配置
// 以 "data/" 开头的路径优先从嵌入资源读取，其余路径从磁盘读取
func LoadGameConfig(path string) (*GameConfig, error) {
	if path == "" {
		path = DefaultLevelsFile
	}

	var (
		data []byte
		err  error
	)
	if embedded.IsInitialized() && embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}

	gc, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("game config %s: %w", path, err)
	}
	return gc, nil
}
