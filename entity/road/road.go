package road

import (
	"errors"
	"fmt"

	"github.com/tsinghua-fib-lab/crossroads-sim-oss/entity/vehicle"
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/utils/container"
)

var (
	// ErrCapacityFull 道路剩余空间不足以容纳待入队车辆
	// 说明：属于正常的仿真状态（拥堵回压），由调用方处理
	ErrCapacityFull = errors.New("road is full")
)

// Road 道路实体
// 功能：表示一条单向道路，车辆按先进先出排队，队首为最靠近路口的车辆
// 说明：道路以米为单位维护占用量，入队前做容量检查，保证
// 占用量始终不超过道路长度
type Road struct {
	name   string // 道路名
	speed  int64  // 限速（公里/小时）
	length int64  // 长度（米），即空间容量

	queue     container.Queue[*vehicle.Vehicle] // 车辆队列
	occupancy int64                             // 当前占用（米），等于队列中车辆长度之和
	entered   int64                             // 累计驶入车辆数
}

// newRoad 创建道路实体
// 功能：根据物理参数创建道路
// 参数：name-道路名，speed-限速（公里/小时），length-长度（米）
// 返回：初始化完成的道路实例
func newRoad(name string, speed, length int64) *Road {
	return &Road{name: name, speed: speed, length: length}
}

// Name 获取道路名
func (r *Road) Name() string {
	return r.name
}

// Speed 获取道路限速（公里/小时）
func (r *Road) Speed() int64 {
	return r.speed
}

// Length 获取道路长度（米）
func (r *Road) Length() int64 {
	return r.length
}

// Occupancy 获取道路当前占用（米）
func (r *Road) Occupancy() int64 {
	return r.occupancy
}

// VehicleCount 获取道路上当前的车辆数
func (r *Road) VehicleCount() int {
	return r.queue.Len()
}

// Entered 获取累计驶入该道路的车辆数
func (r *Road) Entered() int64 {
	return r.entered
}

// Vehicles 获取道路上的全部车辆（从队首到队尾）
func (r *Road) Vehicles() []*vehicle.Vehicle {
	return r.queue.Values()
}

// TimeOfRoute 计算道路的自由流通过时间（秒）
// 功能：按道路长度和限速推导车辆走完全程所需的时间，向上取整
// 返回：通过时间（秒）
// 说明：time = ceil(length[km] / speed[km/h] * 3600[s/h])
func (r *Road) TimeOfRoute() int64 {
	return (r.length*3600 + r.speed*1000 - 1) / (r.speed * 1000)
}

// fits 判断车辆能否进入道路
// 功能：检查道路剩余空间是否容得下车辆
// 参数：v-待入队车辆
// 返回：true表示可以进入
func (r *Road) fits(v *vehicle.Vehicle) bool {
	return r.occupancy+v.Length() <= r.length
}

// push 车辆入队
// 功能：将车辆加入队尾并更新占用量
// 说明：调用方必须先通过fits检查容量
func (r *Road) push(v *vehicle.Vehicle) {
	r.queue.PushBack(v)
	r.occupancy += v.Length()
	r.entered++
}

// Enqueue 车辆入队（带容量检查）
// 功能：尝试将车辆加入队尾
// 参数：v-待入队车辆
// 返回：空间不足时返回ErrCapacityFull
func (r *Road) Enqueue(v *vehicle.Vehicle) error {
	if !r.fits(v) {
		return ErrCapacityFull
	}
	r.push(v)
	return nil
}

// Dequeue 移除并返回队首车辆
// 功能：将最靠近路口的车辆移出道路并更新占用量
// 返回：队首车辆
// 说明：空道路出队属于程序错误，直接panic
func (r *Road) Dequeue() *vehicle.Vehicle {
	v, ok := r.queue.PopFront()
	if !ok {
		log.Panicf("road %s: dequeue on empty road", r.name)
	}
	r.occupancy -= v.Length()
	return v
}

// Front 查看队首车辆
// 功能：返回最靠近路口的车辆但不移除
// 返回：队首车辆
// 说明：空道路取队首属于程序错误，直接panic
func (r *Road) Front() *vehicle.Vehicle {
	v, ok := r.queue.Front()
	if !ok {
		log.Panicf("road %s: front on empty road", r.name)
	}
	return v
}

// String 获取道路的字符串表示
func (r *Road) String() string {
	return fmt.Sprintf("Road %s (%d/%dm, %d vehicles)", r.name, r.occupancy, r.length, r.queue.Len())
}
