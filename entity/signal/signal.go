package signal

import (
	"log"
)

// Controller 信号控制器
// 功能：维护入口道路的相位划分，决定当前哪些道路放行
// 说明：相位以入口道路下标集合表示，按固定顺序轮转；控制器
// 只回答"某条道路当前是否放行"，不直接操作道路或车辆
type Controller struct {
	phases  [][]int      // 相位划分，每个相位列出放行的入口道路下标
	current int          // 当前相位下标
	open    map[int]bool // 当前相位放行的道路下标集合
}

// NewController 创建信号控制器
// 功能：根据相位划分初始化控制器，起始相位为0
// 参数：phases-相位划分
// 返回：初始化完成的控制器实例
// 说明：空相位划分属于程序错误（配置校验阶段已拦截），直接panic
func NewController(phases [][]int) *Controller {
	if len(phases) == 0 {
		log.Panic("signal: empty phase partition")
	}
	c := &Controller{phases: phases}
	c.rebuild()
	return c
}

// rebuild 重建放行集合
// 功能：根据当前相位下标重建放行的道路下标集合
func (c *Controller) rebuild() {
	c.open = make(map[int]bool, len(c.phases[c.current]))
	for _, i := range c.phases[c.current] {
		c.open[i] = true
	}
}

// Open 判断入口道路当前是否放行
// 参数：entryIndex-入口道路下标
// 返回：true表示该道路处于绿灯相位
func (c *Controller) Open(entryIndex int) bool {
	return c.open[entryIndex]
}

// Change 切换到下一个相位
// 功能：相位下标加一并按相位数取模，重建放行集合
func (c *Controller) Change() {
	c.current = (c.current + 1) % len(c.phases)
	c.rebuild()
}

// Current 获取当前相位下标
func (c *Controller) Current() int {
	return c.current
}

// PhaseCount 获取相位总数
func (c *Controller) PhaseCount() int {
	return len(c.phases)
}
