package clock

import "fmt"

// Clock 仿真时钟管理器
// 功能：管理仿真系统的时间推进，记录当前仿真秒数与结束时间
// 说明：时间以整数秒为单位，由事件驱动主循环推进；
// 模拟区间为[0, EndTime]（闭区间，结束秒内到期的事件仍会被处理）
type Clock struct {
	EndTime int64 // 结束时间（秒）

	T int64 // 当前时间（秒）
}

// New 创建新的时钟实例
// 功能：根据仿真总时长初始化时钟
// 参数：endTime-仿真结束时间（秒）
// 返回：初始化完成的时钟实例
func New(endTime int64) *Clock {
	return &Clock{EndTime: endTime}
}

// Done 判断仿真是否结束
// 功能：检查当前时间是否已越过结束时间
// 返回：true表示仿真应当停止
func (c *Clock) Done() bool {
	return c.T > c.EndTime
}

// Tick 时间前进一秒
// 功能：将当前时间推进一个仿真秒
func (c *Clock) Tick() {
	c.T++
}

// JumpTo 时间跳跃
// 功能：将当前时间直接跳到指定时刻，用于跳过无事件的空闲区间
// 参数：t-目标时刻（秒）
// 说明：只允许向前跳跃，向后跳跃属于调用方错误
func (c *Clock) JumpTo(t int64) {
	if t > c.T {
		c.T = t
	}
}

// String 获取时钟的字符串表示
// 功能：将当前时间格式化为可读的字符串
// 返回：格式化的时间字符串（HH:MM:SS）
// 算法说明：
// 1. 将总秒数转换为小时、分钟、秒
// 2. 格式化为标准时间格式
func (c *Clock) String() string {
	t := c.T
	h := t / 3600
	t -= h * 3600
	m := t / 60
	t -= m * 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, t)
}
