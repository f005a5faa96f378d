package round

// Ticker 固定间隔计时器
// 由宿主每帧调用 Advance 累积时间，返回本次应触发的次数
type Ticker struct {
	Interval float64 // 秒
	elapsed  float64
}

// Advance 累积 dt 秒，返回跨过的完整间隔数
func (t *Ticker) Advance(dt float64) int {
	if t.Interval <= 0 || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	n := 0
	for t.elapsed >= t.Interval {
		t.elapsed -= t.Interval
		n++
	}
	return n
}

// Reset 清空累积时间
func (t *Ticker) Reset() {
	t.elapsed = 0
}
