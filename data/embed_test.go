package data_test

import (
	"testing"

	"github.com/decker502/memorymatch/data"
	"github.com/decker502/memorymatch/pkg/config"
	"github.com/decker502/memorymatch/pkg/embedded"
)

// TestDefaultLevelsOutsideRepo 在仓库外的工作目录中也能加载默认关卡
func TestDefaultLevelsOutsideRepo(t *testing.T) {
	embedded.Init(data.FS)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	appConfig, err := config.LoadAppConfig("")
	if err != nil {
		t.Fatalf("LoadAppConfig() error: %v", err)
	}

	gc, err := config.LoadGameConfig(appConfig.LevelsFile)
	if err != nil {
		t.Fatalf("LoadGameConfig(%q) error: %v", appConfig.LevelsFile, err)
	}
	if gc.LevelCount() == 0 {
		t.Error("embedded levels file has no levels")
	}
}

func TestEmbeddedLevelsMatchDefaultPath(t *testing.T) {
	embedded.Init(data.FS)

	if !embedded.Exists(config.DefaultLevelsFile) {
		t.Fatalf("%s is not embedded", config.DefaultLevelsFile)
	}
	matches, err := embedded.Glob("data/*.yaml")
	if err != nil {
		t.Fatalf("Glob() error: %v", err)
	}
	found := false
	for _, m := range matches {
		if m == config.DefaultLevelsFile {
			found = true
		}
	}
	if !found {
		t.Errorf("Glob() = %v, want it to include %s", matches, config.DefaultLevelsFile)
	}
}
