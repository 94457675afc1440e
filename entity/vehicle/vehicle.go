package vehicle

import "fmt"

// 车辆长度范围（米）：车身2-6米，加前方2米与后方1米的安全间距
const (
	MinLength = 5
	MaxLength = 9
)

// Turn 路口转向意图
type Turn int32

const (
	TurnLeft     Turn = iota // 左转
	TurnStraight             // 直行
	TurnRight                // 右转
)

// String 获取转向的字符串表示
func (t Turn) String() string {
	switch t {
	case TurnLeft:
		return "left"
	case TurnStraight:
		return "straight"
	case TurnRight:
		return "right"
	default:
		return fmt.Sprintf("Turn(%d)", int32(t))
	}
}

// Vehicle 车辆实体
// 功能：表示仿真中的一辆车，包含占用长度与转向意图
// 说明：长度在进入系统时采样确定；转向意图在被入口道路
// 接纳时采样确定，此后不再改变
type Vehicle struct {
	id     int64 // 车辆编号，进入系统的顺序
	length int64 // 占用长度（米），含安全间距
	turn   Turn  // 路口转向意图
}

// New 创建车辆
// 功能：根据编号和采样好的长度创建车辆实例
// 参数：id-车辆编号，length-占用长度（米）
// 返回：车辆实例
func New(id int64, length int64) *Vehicle {
	return &Vehicle{id: id, length: length}
}

// ID 获取车辆编号
func (v *Vehicle) ID() int64 {
	return v.id
}

// Length 获取车辆占用长度（米）
func (v *Vehicle) Length() int64 {
	return v.length
}

// Turn 获取转向意图
func (v *Vehicle) Turn() Turn {
	return v.turn
}

// SetTurnWhenEnqueue 设置转向意图
// 功能：在车辆被入口道路接纳时写入采样得到的转向
// 说明：仅在入队时调用一次，此后不再改变
func (v *Vehicle) SetTurnWhenEnqueue(turn Turn) {
	v.turn = turn
}

// String 获取车辆的字符串表示
func (v *Vehicle) String() string {
	return fmt.Sprintf("Vehicle %d (%dm, %v)", v.id, v.length, v.turn)
}
