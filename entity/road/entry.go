package road

import (
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/entity/vehicle"
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/utils/randengine"
)

// Destination 路口转向目标
// 功能：以带标签的下标引用一条目标道路
// 说明：下标指向管理器持有的入口或出口道路数组，避免在道路之间
// 保存裸指针（路网由管理器统一持有，不存在所有权环）
type Destination struct {
	ToExit bool // true表示目标是出口道路
	Index  int  // 在管理器对应数组中的下标
}

// EntryRoad 入口道路实体
// 功能：在基础道路之上增加输入过程、转向采样和路口接线
// 说明：车辆在被接纳入队时按转向概率分布采样转向意图；
// 输入过程按[mean-jitter, mean+jitter]的均匀分布采样到达间隔
type EntryRoad struct {
	*Road

	inputMean   int64      // 平均到达间隔（秒），0表示无输入过程
	inputJitter int64      // 到达间隔抖动（秒）
	turnProbs   []float64  // 转向概率（左、直、右）
	crossroads  [3]Destination

	generator *randengine.Engine // 仿真系统共享的随机数引擎
}

// NewEntryRoad 创建入口道路
// 功能：根据配置参数创建入口道路实例
// 参数：name/speed/length-基础道路参数，inputMean/inputJitter-输入过程参数，
// probLeft/probStraight/probRight-转向概率，generator-共享随机数引擎
// 返回：初始化完成的入口道路实例
// 说明：路口接线在所有道路创建完毕后由SetCrossroadsWhenInit写入
func NewEntryRoad(
	name string,
	speed, length int64,
	inputMean, inputJitter int64,
	probLeft, probStraight, probRight float64,
	generator *randengine.Engine,
) *EntryRoad {
	return &EntryRoad{
		Road:        newRoad(name, speed, length),
		inputMean:   inputMean,
		inputJitter: inputJitter,
		turnProbs:   []float64{probLeft, probStraight, probRight},
		generator:   generator,
	}
}

// SetCrossroadsWhenInit 设置路口接线
// 功能：写入三个转向各自的目标道路
// 参数：left/straight/right-三个转向的目标
// 说明：仅在初始化阶段调用一次，仿真开始后不再改变
func (e *EntryRoad) SetCrossroadsWhenInit(left, straight, right Destination) {
	e.crossroads[vehicle.TurnLeft] = left
	e.crossroads[vehicle.TurnStraight] = straight
	e.crossroads[vehicle.TurnRight] = right
}

// Destination 获取指定转向的目标道路
// 参数：turn-转向
// 返回：目标道路引用
func (e *EntryRoad) Destination(turn vehicle.Turn) Destination {
	return e.crossroads[turn]
}

// HasInput 判断道路是否有输入过程
// 返回：true表示有车辆从该道路进入系统
func (e *EntryRoad) HasInput() bool {
	return e.inputMean > 0
}

// InputFrequency 采样下一次车辆到达的间隔
// 功能：在[mean-jitter, mean+jitter]内按均匀分布采样
// 返回：到达间隔（秒）
func (e *EntryRoad) InputFrequency() int64 {
	return e.generator.UniformInt(e.inputMean-e.inputJitter, e.inputMean+e.inputJitter)
}

// Enqueue 车辆入队（入口道路）
// 功能：尝试接纳车辆，接纳成功时为车辆采样转向意图
// 参数：v-待入队车辆
// 返回：空间不足时返回ErrCapacityFull
// 说明：先做容量检查再采样转向，被拒绝的入队不消耗随机数
func (e *EntryRoad) Enqueue(v *vehicle.Vehicle) error {
	if !e.fits(v) {
		return ErrCapacityFull
	}
	v.SetTurnWhenEnqueue(vehicle.Turn(e.generator.DiscreteDistribution(e.turnProbs)))
	e.push(v)
	return nil
}
