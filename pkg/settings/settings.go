// Package settings 保存玩家偏好（音量、开关、全屏）
//
// 只保存偏好设置，不保存对局状态（分数、关卡、连击）。
package settings

import (
	"fmt"
	"log"
	"math"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName gdata 存储目录名
const AppName = "memorymatch"

// 存储路径
const (
	settingsObject   = "settings"
	settingsProperty = "preferences"
)

// Settings 玩家偏好
type Settings struct {
	MusicVolume  float64 `yaml:"musicVolume"`  // 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"`  // 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"`
	SoundEnabled bool    `yaml:"soundEnabled"`
	Fullscreen   bool    `yaml:"fullscreen"` // 启动时是否全屏
}

// Defaults 返回默认设置
func Defaults() Settings {
	return Settings{
		MusicVolume:  0.7,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: true,
	}
}

// MusicGain 实际音乐增益，关闭时为 0
func (s Settings) MusicGain() float64 {
	if !s.MusicEnabled {
		return 0
	}
	return s.MusicVolume
}

// SoundGain 实际音效增益，关闭时为 0
func (s Settings) SoundGain() float64 {
	if !s.SoundEnabled {
		return 0
	}
	return s.SoundVolume
}

// Store 持久化后端，*gdata.Manager 满足该接口
type Store interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

var _ Store = (*gdata.Manager)(nil)

// OpenStore 打开 gdata 存储
// 失败时返回 nil，Manager 以仅内存模式运行
func OpenStore(appName string) Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[SettingsManager] Warning: gdata unavailable: %v (settings will not persist)", err)
		return nil
	}
	return m
}

// Manager 设置管理器
type Manager struct {
	store    Store // 可为 nil（降级模式）
	settings Settings
}

// NewManager 创建设置管理器并加载已保存的设置
// 加载失败时使用默认设置并记录警告
func NewManager(store Store) *Manager {
	m := &Manager{
		store:    store,
		settings: Defaults(),
	}
	if err := m.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return m
}

// Load 从存储加载设置；不存在时使用默认值
func (m *Manager) Load() error {
	m.settings = Defaults()
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := Defaults()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)

	m.settings = loaded
	log.Printf("[SettingsManager] Settings loaded")
	return nil
}

// Save 持久化当前设置；降级模式下直接返回 nil
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved")
	return nil
}

// Get 返回当前设置的副本
func (m *Manager) Get() Settings {
	return m.settings
}

// SetMusicVolume 设置音乐音量（限制在 0~1）
func (m *Manager) SetMusicVolume(volume float64) {
	m.settings.MusicVolume = clampVolume(volume)
}

// SetSoundVolume 设置音效音量（限制在 0~1）
func (m *Manager) SetSoundVolume(volume float64) {
	m.settings.SoundVolume = clampVolume(volume)
}

// ToggleMusic 切换音乐开关，返回新的状态
func (m *Manager) ToggleMusic() bool {
	m.settings.MusicEnabled = !m.settings.MusicEnabled
	return m.settings.MusicEnabled
}

// ToggleSound 切换音效开关，返回新的状态
func (m *Manager) ToggleSound() bool {
	m.settings.SoundEnabled = !m.settings.SoundEnabled
	return m.settings.SoundEnabled
}

// SetFullscreen 设置全屏
func (m *Manager) SetFullscreen(enabled bool) {
	m.settings.Fullscreen = enabled
}

// VolumeStep 每次按键调整的音量
const VolumeStep = 0.1

// StepVolume 在 volume 基础上调整 delta，结果保留两位小数并限制在 0~1
func StepVolume(volume, delta float64) float64 {
	return clampVolume(math.Round((volume+delta)*100) / 100)
}

func clampVolume(volume float64) float64 {
	if volume < 0 {
		return 0
	}
	if volume > 1 {
		return 1
	}
	return volume
}
