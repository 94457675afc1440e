package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/utils/config"
	"gopkg.in/yaml.v2"
)

func TestDefaultIsValid(t *testing.T) {
	c := config.Default()
	assert.NoError(t, c.Validate())
	assert.Len(t, c.Network.Entries, 8)
	assert.Len(t, c.Network.Exits, 6)
	assert.Len(t, c.Network.Phases, 4)
}

func TestDefaultRoundTrip(t *testing.T) {
	c := config.Default()
	data, err := yaml.Marshal(c)
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "scenario.yml")
	assert.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := config.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, c, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestValidateControl(t *testing.T) {
	c := config.Default()
	c.Control.ExecutionTime = 0
	assert.Error(t, c.Validate())

	c = config.Default()
	c.Control.PhaseDuration = -1
	assert.Error(t, c.Validate())
}

func TestValidateTurnProbabilities(t *testing.T) {
	c := config.Default()
	c.Network.Entries[0].ProbLeft = 0.5 // 0.5+0.1+0.1 != 1
	assert.Error(t, c.Validate())

	c = config.Default()
	c.Network.Entries[0].ProbLeft = -0.1
	assert.Error(t, c.Validate())
}

func TestValidateInputProcess(t *testing.T) {
	// mean-jitter < 1 会产生零间隔输入事件
	c := config.Default()
	c.Network.Entries[0].InputMean = 2
	c.Network.Entries[0].InputJitter = 2
	assert.Error(t, c.Validate())

	// mean为0表示没有输入过程，抖动无意义但合法
	c = config.Default()
	c.Network.Entries[0].InputMean = 0
	c.Network.Entries[0].InputJitter = 0
	assert.NoError(t, c.Validate())
}

func TestValidateWiring(t *testing.T) {
	c := config.Default()
	c.Network.Entries[0].To.Left = "NO_SUCH_ROAD"
	assert.Error(t, c.Validate())

	c = config.Default()
	c.Network.Exits[0].Name = c.Network.Entries[0].Name // 重名
	assert.Error(t, c.Validate())
}

func TestValidatePhases(t *testing.T) {
	c := config.Default()
	c.Network.Phases = nil
	assert.Error(t, c.Validate())

	c = config.Default()
	c.Network.Phases = [][]string{{}}
	assert.Error(t, c.Validate())

	c = config.Default()
	c.Network.Phases = [][]string{{"N1_N"}} // 出口道路不能出现在相位里
	assert.Error(t, c.Validate())
}
