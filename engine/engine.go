package engine

import (
	"flag"
	"fmt"

	"github.com/tsinghua-fib-lab/crossroads-sim-oss/clock"
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/entity/road"
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/entity/signal"
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/entity/vehicle"
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/utils/config"
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/utils/container"
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/utils/randengine"
)

var (
	heartBeatInterval = flag.Int64("log.heartbeat_interval", 600, "心跳日志间隔（仿真秒）")
)

// Engine 离散事件仿真引擎
// 功能：持有时钟、路网、信号控制器和事件队列，驱动整个仿真
// 说明：严格单线程，所有状态只在主循环中变更；相同种子和配置下
// 两次运行产生完全一致的结果
type Engine struct {
	cfg config.Config

	clock     *clock.Clock
	roads     *road.Manager
	signal    *signal.Controller
	generator *randengine.Engine
	events    *container.SortedList[Event] // 按触发时刻升序、同刻按插入顺序

	nextVehicleID int64 // 下一个车辆编号

	inputCount       int64 // 进入系统的车辆数
	outputCount      int64 // 离开系统的车辆数
	exchangeCount    int64 // 路口换道次数
	phaseChangeCount int64 // 信号相位切换次数
}

// New 创建仿真引擎
// 功能：校验配置，构建路网、信号控制器和初始事件
// 参数：cfg-完整仿真配置
// 返回：初始化完成的引擎和错误信息
// 算法说明：
// 1. 配置校验：结构校验（config.Validate）与容量校验（road.NewManager）
// 2. 创建共享随机数引擎（单一种子，全部采样共用）
// 3. 创建路网并完成接线，将相位中的道路名解析为下标
// 4. 播种初始事件：每条有输入过程的入口道路一个INPUT事件，
//    外加一个SIGNAL事件
func New(cfg config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	generator := randengine.New(cfg.Control.Seed)
	roads, err := road.NewManager(cfg.Network, generator)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	phases := make([][]int, len(cfg.Network.Phases))
	for i, phase := range cfg.Network.Phases {
		phases[i] = make([]int, len(phase))
		for j, name := range phase {
			idx, ok := roads.EntryIndex(name)
			if !ok {
				return nil, fmt.Errorf("invalid config: phase %d: unknown entry road %q", i, name)
			}
			phases[i][j] = idx
		}
	}

	e := &Engine{
		cfg:       cfg,
		clock:     clock.New(cfg.Control.ExecutionTime),
		roads:     roads,
		signal:    signal.NewController(phases),
		generator: generator,
		events:    container.NewSortedList[Event](),
	}

	for i, entry := range roads.Entries() {
		if !entry.HasInput() {
			continue
		}
		t := e.clock.T + entry.InputFrequency()
		e.events.Insert(t, Event{Time: t, Kind: KindInput, Road: i})
	}
	t := e.clock.T + cfg.Control.PhaseDuration
	e.events.Insert(t, Event{Time: t, Kind: KindSignal, Road: -1})

	return e, nil
}

// Roads 获取道路管理器
func (e *Engine) Roads() *road.Manager {
	return e.roads
}

// Clock 获取仿真时钟
func (e *Engine) Clock() *clock.Clock {
	return e.clock
}

// Run 运行仿真主循环
// 功能：推进时钟并处理到期事件，直到越过仿真结束时间
// 算法说明（外层每次迭代）：
// 1. 从队首开始扫描所有触发时刻不晚于当前时钟的事件
// 2. 事件执行成功：从队列移除、插入后续事件、游标回到队首
//    （刚插入的后续事件可能同样到期，需要重新检查最早事件）
// 3. 事件执行失败（目标道路满或信号为红）：事件留在原位等待
//    下一轮重试，游标加一跳过它，不插入后续事件
// 4. 扫描结束后时钟加一秒；如果本轮没有任何事件成功执行，
//    直接把时钟跳到游标处事件的触发时刻，跳过空闲区间
// 说明：换道成功额外消耗一个仿真秒（见dispatchChange），这给
// 路口吞吐量加了一个自然的上限
func (e *Engine) Run() {
	for !e.clock.Done() {
		eventsMade := 0
		cursor := 0
		for cursor < e.events.Len() && e.events.KeyAt(cursor) <= e.clock.T {
			if e.dispatch(e.events.At(cursor), cursor) {
				eventsMade++
				cursor = 0
			} else {
				cursor++
			}
		}
		e.clock.Tick()
		if eventsMade == 0 && cursor < e.events.Len() {
			e.clock.JumpTo(e.events.KeyAt(cursor))
		}
		if e.clock.T%*heartBeatInterval == 0 {
			log.Debugf("TIME: %v, %d events pending", e.clock, e.events.Len())
		}
	}
	log.Infof("simulation complete at %v", e.clock)
}

// dispatch 分发单个事件
// 功能：按事件类型执行对应动作
// 参数：ev-待执行事件，cursor-事件在队列中的当前位置
// 返回：true表示事件执行成功并已从队列移除
func (e *Engine) dispatch(ev Event, cursor int) bool {
	switch ev.Kind {
	case KindSignal:
		return e.dispatchSignal(cursor)
	case KindInput:
		return e.dispatchInput(ev, cursor)
	case KindChange:
		return e.dispatchChange(ev, cursor)
	case KindOutput:
		return e.dispatchOutput(ev, cursor)
	default:
		log.Panicf("unknown event kind %v", ev.Kind)
		return false
	}
}

// dispatchSignal 处理信号相位切换事件
// 功能：切换相位并重新安排下一次切换
// 说明：信号切换永远成功
func (e *Engine) dispatchSignal(cursor int) bool {
	e.signal.Change()
	e.phaseChangeCount++
	e.events.RemoveAt(cursor)

	t := e.clock.T + e.cfg.Control.PhaseDuration
	e.events.Insert(t, Event{Time: t, Kind: KindSignal, Road: -1})
	return true
}

// dispatchInput 处理车辆到达事件
// 功能：创建新车辆并尝试进入入口道路
// 算法说明：
// 1. 采样车辆长度并创建车辆
// 2. 入队成功：安排该道路的CHANGE事件（自由流通过时间之后）
//    和下一次INPUT事件（按本事件的触发时刻加采样间隔，保持
//    到达过程的节奏不受重试影响）
// 3. 入队失败（道路满）：丢弃车辆，事件留在队列中下一轮重试
func (e *Engine) dispatchInput(ev Event, cursor int) bool {
	entry := e.roads.Entry(ev.Road)
	v := vehicle.New(e.nextVehicleID, e.generator.UniformInt(vehicle.MinLength, vehicle.MaxLength))
	if err := entry.Enqueue(v); err != nil {
		log.Debugf("input blocked: road %s is full", entry.Name())
		return false
	}
	e.nextVehicleID++
	e.inputCount++
	e.events.RemoveAt(cursor)

	t := e.clock.T + entry.TimeOfRoute()
	e.events.Insert(t, Event{Time: t, Kind: KindChange, Road: ev.Road})
	t = ev.Time + entry.InputFrequency()
	e.events.Insert(t, Event{Time: t, Kind: KindInput, Road: ev.Road})
	return true
}

// dispatchChange 处理路口换道事件
// 功能：入口道路的队首车辆尝试驶入其转向对应的目标道路
// 算法说明：
// 1. 信号为红：事件阻塞，车辆在停车线等待
// 2. 查队首车辆的转向，找到接线的目标道路
// 3. 目标道路入队成功：从本道路出队，安排目标道路上的后续
//    事件（入口道路为CHANGE，出口道路为OUTPUT），时钟额外加一
//    秒（车辆通过路口的时间）
// 4. 目标道路满：事件阻塞，车辆留在队首等待下一轮
// 说明：车辆驶入下一条入口道路时会重新采样转向意图（由
// EntryRoad.Enqueue完成）
func (e *Engine) dispatchChange(ev Event, cursor int) bool {
	entry := e.roads.Entry(ev.Road)
	if !e.signal.Open(ev.Road) {
		log.Debugf("change blocked: road %s has red light", entry.Name())
		return false
	}

	v := entry.Front()
	dest := entry.Destination(v.Turn())
	if dest.ToExit {
		exit := e.roads.Exit(dest.Index)
		if err := exit.Enqueue(v); err != nil {
			log.Debugf("change blocked: %s -> %s is full", entry.Name(), exit.Name())
			return false
		}
		entry.Dequeue()
		e.exchangeCount++
		e.events.RemoveAt(cursor)

		t := e.clock.T + exit.TimeOfRoute()
		e.events.Insert(t, Event{Time: t, Kind: KindOutput, Road: dest.Index})
	} else {
		next := e.roads.Entry(dest.Index)
		if err := next.Enqueue(v); err != nil {
			log.Debugf("change blocked: %s -> %s is full", entry.Name(), next.Name())
			return false
		}
		entry.Dequeue()
		e.exchangeCount++
		e.events.RemoveAt(cursor)

		t := e.clock.T + next.TimeOfRoute()
		e.events.Insert(t, Event{Time: t, Kind: KindChange, Road: dest.Index})
	}
	// 车辆驶出路口消耗一个仿真秒
	e.clock.Tick()
	return true
}

// dispatchOutput 处理车辆离开事件
// 功能：出口道路的队首车辆离开系统
// 说明：离开永远成功；车辆在此被销毁并计入输出
func (e *Engine) dispatchOutput(ev Event, cursor int) bool {
	exit := e.roads.Exit(ev.Road)
	exit.Dequeue()
	e.outputCount++
	e.events.RemoveAt(cursor)
	return true
}
