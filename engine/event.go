package engine

import "fmt"

// Kind 事件类型
type Kind int32

const (
	KindInput  Kind = iota // 车辆到达入口道路
	KindChange             // 队首车辆在路口换道
	KindOutput             // 车辆从出口道路离开系统
	KindSignal             // 信号相位切换
)

// String 获取事件类型的字符串表示
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindChange:
		return "change"
	case KindOutput:
		return "output"
	case KindSignal:
		return "signal"
	default:
		return fmt.Sprintf("Kind(%d)", int32(k))
	}
}

// Event 仿真事件
// 功能：表示一个在指定时刻对某条道路（或信号控制器）生效的事件
// 说明：单一记录加类型标签，分发时按Kind匹配；Road对INPUT/CHANGE
// 是入口道路下标，对OUTPUT是出口道路下标，对SIGNAL无意义（-1）
type Event struct {
	Time int64 // 触发时刻（仿真秒）
	Kind Kind  // 事件类型
	Road int   // 目标道路下标
}

// String 获取事件的字符串表示
func (e Event) String() string {
	return fmt.Sprintf("Event{%v @%d road %d}", e.Kind, e.Time, e.Road)
}
