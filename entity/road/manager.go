package road

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/entity/vehicle"
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/utils/config"
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/utils/randengine"
)

// Manager 道路管理器
// 功能：持有路网中的全部道路，负责创建、接线和查找
// 说明：入口和出口道路分别存放在两个数组中，路口接线以下标
// 引用目标道路（见Destination）；管理器是路网唯一的所有者
type Manager struct {
	entries []*EntryRoad
	exits   []*ExitRoad

	entryIndex map[string]int // 道路名->入口道路下标映射表
	exitIndex  map[string]int // 道路名->出口道路下标映射表
}

// NewManager 创建道路管理器
// 功能：根据路网配置创建全部道路并完成路口接线
// 参数：network-路网配置，generator-仿真系统共享的随机数引擎
// 返回：初始化完成的管理器和错误信息
// 算法说明：
// 1. 创建全部入口和出口道路，检查容量不小于最小车辆长度
// 2. 建立道路名到下标的映射
// 3. 解析每条入口道路的接线，将目标道路名转换为带标签的下标
// 说明：配置的结构校验（概率和、相位等）由config.Validate负责，
// 这里只做与车辆模型相关的容量检查和名字解析
func NewManager(network config.Network, generator *randengine.Engine) (*Manager, error) {
	m := &Manager{
		entries: make([]*EntryRoad, 0, len(network.Entries)),
		exits:   make([]*ExitRoad, 0, len(network.Exits)),
	}

	for _, c := range network.Entries {
		if c.Length < vehicle.MinLength {
			return nil, fmt.Errorf("road %s: length %dm cannot fit any vehicle (min %dm)",
				c.Name, c.Length, vehicle.MinLength)
		}
		m.entries = append(m.entries, NewEntryRoad(
			c.Name, c.Speed, c.Length,
			c.InputMean, c.InputJitter,
			c.ProbLeft, c.ProbStraight, c.ProbRight,
			generator,
		))
	}
	for _, c := range network.Exits {
		if c.Length < vehicle.MinLength {
			return nil, fmt.Errorf("road %s: length %dm cannot fit any vehicle (min %dm)",
				c.Name, c.Length, vehicle.MinLength)
		}
		m.exits = append(m.exits, NewExitRoad(c.Name, c.Speed, c.Length))
	}

	m.entryIndex = lo.SliceToMap(lo.Range(len(m.entries)), func(i int) (string, int) {
		return m.entries[i].Name(), i
	})
	m.exitIndex = lo.SliceToMap(lo.Range(len(m.exits)), func(i int) (string, int) {
		return m.exits[i].Name(), i
	})

	for i, c := range network.Entries {
		left, err := m.resolve(c.To.Left)
		if err != nil {
			return nil, fmt.Errorf("road %s: %w", c.Name, err)
		}
		straight, err := m.resolve(c.To.Straight)
		if err != nil {
			return nil, fmt.Errorf("road %s: %w", c.Name, err)
		}
		right, err := m.resolve(c.To.Right)
		if err != nil {
			return nil, fmt.Errorf("road %s: %w", c.Name, err)
		}
		m.entries[i].SetCrossroadsWhenInit(left, straight, right)
	}
	return m, nil
}

// resolve 将道路名解析为转向目标
// 功能：在入口和出口道路中查找名字对应的下标
// 参数：name-道路名
// 返回：带标签的下标和错误信息
func (m *Manager) resolve(name string) (Destination, error) {
	if i, ok := m.entryIndex[name]; ok {
		return Destination{ToExit: false, Index: i}, nil
	}
	if i, ok := m.exitIndex[name]; ok {
		return Destination{ToExit: true, Index: i}, nil
	}
	return Destination{}, fmt.Errorf("unknown destination road %q", name)
}

// Entries 获取全部入口道路
func (m *Manager) Entries() []*EntryRoad {
	return m.entries
}

// Exits 获取全部出口道路
func (m *Manager) Exits() []*ExitRoad {
	return m.exits
}

// Entry 按下标获取入口道路
// 说明：下标越界属于程序错误，直接panic
func (m *Manager) Entry(i int) *EntryRoad {
	if i < 0 || i >= len(m.entries) {
		log.Panicf("no entry road at index %d", i)
	}
	return m.entries[i]
}

// Exit 按下标获取出口道路
// 说明：下标越界属于程序错误，直接panic
func (m *Manager) Exit(i int) *ExitRoad {
	if i < 0 || i >= len(m.exits) {
		log.Panicf("no exit road at index %d", i)
	}
	return m.exits[i]
}

// EntryIndex 按道路名查找入口道路下标
// 参数：name-道路名
// 返回：下标和是否存在
func (m *Manager) EntryIndex(name string) (int, bool) {
	i, ok := m.entryIndex[name]
	return i, ok
}

// VehiclesOnRoads 统计当前在路网中的车辆总数
// 功能：累加全部入口和出口道路上的车辆数
// 返回：车辆总数
func (m *Manager) VehiclesOnRoads() int64 {
	count := lo.SumBy(m.entries, func(e *EntryRoad) int64 { return int64(e.VehicleCount()) })
	count += lo.SumBy(m.exits, func(x *ExitRoad) int64 { return int64(x.VehicleCount()) })
	return count
}

// LiveInputs 统计有输入过程的入口道路数
// 返回：有输入过程的道路数
func (m *Manager) LiveInputs() int {
	return lo.CountBy(m.entries, func(e *EntryRoad) bool { return e.HasInput() })
}
