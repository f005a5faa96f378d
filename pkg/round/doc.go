// Package round 实现记忆翻牌游戏的单局控制器
//
// Controller 只负责游戏规则和状态转换：发牌、洗牌、计时、配对计分、过关和超时重开。
// 渲染、补间动画、音效和点击检测全部通过 Host 和 Card 接口委托给宿主
// （Ebitengine 场景或终端界面），因此本包不依赖任何游戏框架，可以直接单元测试。
//
// 所有入口（Update/Tick、CardClicked、动画完成回调）都必须在同一个 goroutine 上串行调用。
package round
