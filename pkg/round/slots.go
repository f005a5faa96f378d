package round

import (
	"math/rand/v2"
	"time"
)

// Layout 网格布局参数
type Layout struct {
	Gap     float64       // 单元格尺寸 = 卡牌尺寸 + Gap
	Stagger time.Duration // 第 N 个位置延迟 N*Stagger（N 从 1 开始）
}

// ComputeSlots 计算 cols*rows 个位置，网格在屏幕上居中
// 位置按行优先排列，坐标为单元格中心
func ComputeSlots(cols, rows int, cardW, cardH, screenW, screenH float64, layout Layout) []Slot {
	cellW := cardW + layout.Gap
	cellH := cardH + layout.Gap
	offsetX := (screenW-cellW*float64(cols))/2 + cellW/2
	offsetY := (screenH-cellH*float64(rows))/2 + cellH/2

	slots := make([]Slot, 0, cols*rows)
	id := 0
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			id++
			slots = append(slots, Slot{
				X:     offsetX + float64(col)*cellW,
				Y:     offsetY + float64(row)*cellH,
				Delay: time.Duration(id) * layout.Stagger,
			})
		}
	}
	return slots
}

// ShuffleSlots 原地均匀随机打乱位置
func ShuffleSlots(rng *rand.Rand, slots []Slot) {
	rng.Shuffle(len(slots), func(i, j int) {
		slots[i], slots[j] = slots[j], slots[i]
	})
}
