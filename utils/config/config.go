package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v2"
)

// 转向概率之和允许的误差
const probEpsilon = 1e-6

// Load 从文件加载配置
// 功能：读取YAML配置文件并严格解析为配置对象
// 参数：path-配置文件路径
// 返回：配置对象和错误信息
// 说明：使用严格模式解析，未知字段会报错
func Load(path string) (Config, error) {
	var c Config
	file, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("config file load err: %w", err)
	}
	if err := yaml.UnmarshalStrict(file, &c); err != nil {
		return c, fmt.Errorf("config file parse err: %w", err)
	}
	return c, nil
}

// Validate 校验配置
// 功能：检查控制参数与路网配置的一致性
// 返回：第一个发现的配置错误，配置合法时返回nil
// 算法说明：
// 1. 控制参数：仿真时长与相位时长必须为正
// 2. 道路参数：限速、长度必须为正，道路名全局唯一
// 3. 输入过程：有输入的道路要求mean-jitter >= 1（否则会产生
//    零间隔的输入事件，仿真无法推进）
// 4. 转向概率：各项在[0,1]内且总和为1（误差probEpsilon以内）
// 5. 路口接线：三个转向的目标道路名必须存在
// 6. 信号相位：至少一个相位，每个相位非空且只引用入口道路
func (c *Config) Validate() error {
	if c.Control.ExecutionTime <= 0 {
		return fmt.Errorf("control: execution_time must be positive, got %d", c.Control.ExecutionTime)
	}
	if c.Control.PhaseDuration <= 0 {
		return fmt.Errorf("control: phase_duration must be positive, got %d", c.Control.PhaseDuration)
	}

	names := make(map[string]bool)
	entryNames := make(map[string]bool)
	checkRoad := func(r RoadConfig) error {
		if r.Name == "" {
			return fmt.Errorf("network: road with empty name")
		}
		if names[r.Name] {
			return fmt.Errorf("network: duplicate road name %s", r.Name)
		}
		names[r.Name] = true
		if r.Speed <= 0 {
			return fmt.Errorf("network: road %s: speed must be positive, got %d", r.Name, r.Speed)
		}
		if r.Length <= 0 {
			return fmt.Errorf("network: road %s: length must be positive, got %d", r.Name, r.Length)
		}
		return nil
	}

	for _, e := range c.Network.Entries {
		if err := checkRoad(e.RoadConfig); err != nil {
			return err
		}
		entryNames[e.Name] = true
		if e.InputMean < 0 || e.InputJitter < 0 {
			return fmt.Errorf("network: road %s: negative input parameters", e.Name)
		}
		if e.InputMean > 0 && e.InputMean-e.InputJitter < 1 {
			return fmt.Errorf("network: road %s: input_mean-input_jitter must be >= 1, got %d",
				e.Name, e.InputMean-e.InputJitter)
		}
		for _, p := range []float64{e.ProbLeft, e.ProbStraight, e.ProbRight} {
			if p < 0 || p > 1 {
				return fmt.Errorf("network: road %s: turn probability %f out of [0, 1]", e.Name, p)
			}
		}
		if sum := e.ProbLeft + e.ProbStraight + e.ProbRight; math.Abs(sum-1) > probEpsilon {
			return fmt.Errorf("network: road %s: turn probabilities sum to %f, want 1", e.Name, sum)
		}
	}
	for _, x := range c.Network.Exits {
		if err := checkRoad(x); err != nil {
			return err
		}
	}

	for _, e := range c.Network.Entries {
		for _, to := range []string{e.To.Left, e.To.Straight, e.To.Right} {
			if !names[to] {
				return fmt.Errorf("network: road %s: unknown destination %q", e.Name, to)
			}
		}
	}

	if len(c.Network.Phases) == 0 {
		return fmt.Errorf("network: empty phase partition")
	}
	for i, phase := range c.Network.Phases {
		if len(phase) == 0 {
			return fmt.Errorf("network: phase %d is empty", i)
		}
		for _, name := range phase {
			if !entryNames[name] {
				return fmt.Errorf("network: phase %d: %q is not an entry road", i, name)
			}
		}
	}
	return nil
}
