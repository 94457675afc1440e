package road

// ExitRoad 出口道路实体
// 功能：系统边界上的终端道路，车辆出队即离开系统
// 说明：行为与基础道路一致，独立类型用于在路口接线和事件分发中
// 与入口道路区分
type ExitRoad struct {
	*Road
}

// NewExitRoad 创建出口道路
// 功能：根据物理参数创建出口道路实例
// 参数：name-道路名，speed-限速（公里/小时），length-长度（米）
// 返回：初始化完成的出口道路实例
func NewExitRoad(name string, speed, length int64) *ExitRoad {
	return &ExitRoad{Road: newRoad(name, speed, length)}
}
