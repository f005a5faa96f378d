// validate_levels 检查关卡配置文件
//
// 用法：
//
//	go run ./cmd/validate_levels [data/levels.yaml]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/memorymatch/pkg/config"
)

func main() {
	flag.Parse()

	path := config.DefaultLevelsFile
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	gc, err := config.LoadGameConfig(path)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ %s 格式正确\n", path)
	fmt.Printf("✅ 关卡数量: %d\n", gc.LevelCount())
	fmt.Printf("✅ 连击得分: %v\n", gc.ScoreByStreak)
	for i := 1; i <= gc.LevelCount(); i++ {
		lc := gc.Level(i)
		fmt.Printf("   关卡 %d: %dx%d 网格, %d 张卡牌, 限时 %ds\n",
			i, lc.Cols, lc.Rows, lc.CardCount(), lc.Timeout)
	}
}
