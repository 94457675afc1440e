package engine

import (
	"fmt"
	"strings"
)

// Result 仿真结果汇总
// 功能：收集仿真结束时的各项计数和自检恒等式所需的数据
type Result struct {
	InputCount       int64 // 进入系统的车辆数
	VehiclesOnRoads  int64 // 仍在路网中的车辆数
	OutputCount      int64 // 离开系统的车辆数
	ExchangeCount    int64 // 路口换道次数
	PhaseChangeCount int64 // 信号相位切换次数
	EventsRemaining  int64 // 队列中剩余的事件数
	LiveInputs       int64 // 有输入过程的入口道路数
}

// Result 获取当前的仿真结果汇总
// 功能：读取引擎计数器并统计路网上的车辆
// 返回：结果汇总
func (e *Engine) Result() Result {
	return Result{
		InputCount:       e.inputCount,
		VehiclesOnRoads:  e.roads.VehiclesOnRoads(),
		OutputCount:      e.outputCount,
		ExchangeCount:    e.exchangeCount,
		PhaseChangeCount: e.phaseChangeCount,
		EventsRemaining:  int64(e.events.Len()),
		LiveInputs:       int64(e.roads.LiveInputs()),
	}
}

// String 将结果格式化为固定顺序的文本块
// 功能：输出计数表和两条自检恒等式
// 返回：结果文本
// 说明：恒等式左侧按计数计算，供人工核对系统一致性：
// 1. 进入数 - 在途数 = 离开数（车辆守恒）
// 2. 剩余事件数 - 输入事件数 - 1个信号事件 = 在途数
//    （每辆在途车辆恰好对应一个待处理的CHANGE或OUTPUT事件）
func (r Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-20s | Count\n", "Operation")
	fmt.Fprintf(&b, "%-20s | %d\n", "Vehicle input", r.InputCount)
	fmt.Fprintf(&b, "%-20s | %d\n", "Vehicles on roads", r.VehiclesOnRoads)
	fmt.Fprintf(&b, "%-20s | %d\n", "Vehicle output", r.OutputCount)
	fmt.Fprintf(&b, "%-20s | %d\n", "Lane changes", r.ExchangeCount)
	fmt.Fprintf(&b, "%-20s | %d\n", "Signal changes", r.PhaseChangeCount)
	fmt.Fprintf(&b, "%-20s | %d\n", "Events remaining", r.EventsRemaining)
	fmt.Fprintf(&b, "Integrity:\n")
	fmt.Fprintf(&b, "input - on_roads = output: %d - %d = %d\n",
		r.InputCount, r.VehiclesOnRoads, r.InputCount-r.VehiclesOnRoads)
	fmt.Fprintf(&b, "events_remaining - live_inputs - 1 = on_roads: %d - %d - 1 = %d\n",
		r.EventsRemaining, r.LiveInputs, r.EventsRemaining-r.LiveInputs-1)
	return b.String()
}

// LogRoadStats 输出每条道路的统计明细
// 功能：在Debug级别记录每条道路的累计驶入数、当前车辆数和占用
// 说明：仅用于诊断，不属于结果文本块
func (e *Engine) LogRoadStats() {
	for _, r := range e.roads.Entries() {
		log.Debugf("road %s: entered %d, on road %d, occupancy %d/%dm",
			r.Name(), r.Entered(), r.VehicleCount(), r.Occupancy(), r.Length())
	}
	for _, r := range e.roads.Exits() {
		log.Debugf("road %s: entered %d, on road %d, occupancy %d/%dm",
			r.Name(), r.Entered(), r.VehicleCount(), r.Occupancy(), r.Length())
	}
}
