package config

// RoadConfig 道路的基础配置
// 功能：定义一条道路的物理参数
type RoadConfig struct {
	Name   string `yaml:"name"`   // 道路名
	Speed  int64  `yaml:"speed"`  // 限速（公里/小时）
	Length int64  `yaml:"length"` // 长度（米），即空间容量
}

// CrossroadsConfig 路口接线配置
// 功能：定义入口道路在路口处三个转向各自通往的道路
// 说明：目标可以是入口道路（继续排队）或出口道路（离开系统）
type CrossroadsConfig struct {
	Left     string `yaml:"left"`     // 左转目标道路名
	Straight string `yaml:"straight"` // 直行目标道路名
	Right    string `yaml:"right"`    // 右转目标道路名
}

// EntryRoadConfig 入口道路配置
// 功能：在基础道路参数之上定义输入过程、转向概率和路口接线
// 说明：InputMean为0表示该道路没有输入过程（路口间的连接道路）
type EntryRoadConfig struct {
	RoadConfig   `yaml:",inline"`
	InputMean    int64            `yaml:"input_mean"`    // 平均到达间隔（秒），0表示无输入过程
	InputJitter  int64            `yaml:"input_jitter"`  // 到达间隔抖动（秒），采样区间为[mean-jitter, mean+jitter]
	ProbLeft     float64          `yaml:"prob_left"`     // 左转概率
	ProbStraight float64          `yaml:"prob_straight"` // 直行概率
	ProbRight    float64          `yaml:"prob_right"`    // 右转概率
	To           CrossroadsConfig `yaml:"to"`            // 路口接线
}

// Network 路网配置
// 功能：定义全部道路、接线和信号相位划分
type Network struct {
	Entries []EntryRoadConfig `yaml:"entries"` // 入口道路
	Exits   []RoadConfig      `yaml:"exits"`   // 出口道路
	Phases  [][]string        `yaml:"phases"`  // 信号相位划分，每个相位列出放行的入口道路名
}

// Control 模拟器控制配置
// 功能：定义仿真时间范围、信号周期与随机种子
type Control struct {
	ExecutionTime int64  `yaml:"execution_time"` // 仿真总时长（秒）
	PhaseDuration int64  `yaml:"phase_duration"` // 单个信号相位时长（秒）
	Seed          uint64 `yaml:"seed"`           // 随机数种子
}

// Config YAML配置文件的根结构
// 功能：定义整个仿真系统的配置结构
type Config struct {
	Control Control `yaml:"control"` // 模拟过程控制
	Network Network `yaml:"network"` // 路网
}

// Default 内置参考场景
// 功能：返回默认的双路口参考路网配置
// 说明：8条入口道路（其中C1_L、C1_O为路口间连接道路，无输入过程）、
// 6条出口道路；信号按4个相位轮转，每个相位在两个路口各放行一条入口道路
func Default() Config {
	return Config{
		Control: Control{
			ExecutionTime: 3600,
			PhaseDuration: 10,
		},
		Network: Network{
			Entries: []EntryRoadConfig{
				{
					RoadConfig:  RoadConfig{Name: "N1_S", Speed: 60, Length: 500},
					InputMean:   20, InputJitter: 5,
					ProbLeft: 0.8, ProbStraight: 0.1, ProbRight: 0.1,
					To: CrossroadsConfig{Left: "C1_L", Straight: "S1_S", Right: "O1_O"},
				},
				{
					RoadConfig:  RoadConfig{Name: "S1_N", Speed: 60, Length: 500},
					InputMean:   30, InputJitter: 7,
					ProbLeft: 0.1, ProbStraight: 0.1, ProbRight: 0.8,
					To: CrossroadsConfig{Left: "O1_O", Straight: "N1_N", Right: "C1_L"},
				},
				{
					RoadConfig:  RoadConfig{Name: "O1_L", Speed: 80, Length: 2000},
					InputMean:   10, InputJitter: 2,
					ProbLeft: 0.1, ProbStraight: 0.8, ProbRight: 0.1,
					To: CrossroadsConfig{Left: "N1_N", Straight: "C1_L", Right: "S1_S"},
				},
				{
					RoadConfig:  RoadConfig{Name: "L1_O", Speed: 30, Length: 400},
					InputMean:   10, InputJitter: 2,
					ProbLeft: 0.3, ProbStraight: 0.3, ProbRight: 0.4,
					To: CrossroadsConfig{Left: "S2_S", Straight: "C1_O", Right: "N2_N"},
				},
				{
					RoadConfig:  RoadConfig{Name: "N2_S", Speed: 40, Length: 500},
					InputMean:   20, InputJitter: 5,
					ProbLeft: 0.4, ProbStraight: 0.3, ProbRight: 0.3,
					To: CrossroadsConfig{Left: "L1_L", Straight: "S2_S", Right: "C1_O"},
				},
				{
					RoadConfig:  RoadConfig{Name: "S2_N", Speed: 40, Length: 500},
					InputMean:   60, InputJitter: 15,
					ProbLeft: 0.3, ProbStraight: 0.3, ProbRight: 0.4,
					To: CrossroadsConfig{Left: "C1_O", Straight: "N2_N", Right: "L1_L"},
				},
				{
					RoadConfig:  RoadConfig{Name: "C1_L", Speed: 60, Length: 300},
					ProbLeft: 0.3, ProbStraight: 0.4, ProbRight: 0.3,
					To: CrossroadsConfig{Left: "N2_N", Straight: "L1_L", Right: "S2_S"},
				},
				{
					RoadConfig:  RoadConfig{Name: "C1_O", Speed: 60, Length: 300},
					ProbLeft: 0.3, ProbStraight: 0.4, ProbRight: 0.3,
					To: CrossroadsConfig{Left: "S1_S", Straight: "O1_O", Right: "N1_N"},
				},
			},
			Exits: []RoadConfig{
				{Name: "N1_N", Speed: 60, Length: 500},
				{Name: "N2_N", Speed: 40, Length: 500},
				{Name: "O1_O", Speed: 80, Length: 2000},
				{Name: "L1_L", Speed: 60, Length: 500},
				{Name: "S1_S", Speed: 60, Length: 500},
				{Name: "S2_S", Speed: 40, Length: 500},
			},
			Phases: [][]string{
				{"N1_S", "L1_O"},
				{"S1_N", "N2_S"},
				{"O1_L", "S2_N"},
				{"C1_O", "C1_L"},
			},
		},
	}
}
