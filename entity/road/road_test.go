package road_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/entity/road"
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/entity/vehicle"
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/utils/config"
	"github.com/tsinghua-fib-lab/crossroads-sim-oss/utils/randengine"
)

func TestCapacityAdmission(t *testing.T) {
	// 10米道路恰好容纳两辆5米车，第三辆被拒绝
	r := road.NewExitRoad("X", 60, 10)

	assert.NoError(t, r.Enqueue(vehicle.New(1, 5)))
	assert.NoError(t, r.Enqueue(vehicle.New(2, 5)))
	assert.Equal(t, int64(10), r.Occupancy())
	assert.Equal(t, 2, r.VehicleCount())

	err := r.Enqueue(vehicle.New(3, 5))
	assert.ErrorIs(t, err, road.ErrCapacityFull)
	// 失败的入队不改变任何状态
	assert.Equal(t, int64(10), r.Occupancy())
	assert.Equal(t, 2, r.VehicleCount())
	assert.Equal(t, int64(2), r.Entered())
}

func TestFIFOAndOccupancy(t *testing.T) {
	r := road.NewExitRoad("X", 60, 100)
	v1 := vehicle.New(1, 5)
	v2 := vehicle.New(2, 7)
	assert.NoError(t, r.Enqueue(v1))
	assert.NoError(t, r.Enqueue(v2))
	assert.Equal(t, int64(12), r.Occupancy())

	assert.Same(t, v1, r.Front())
	assert.Same(t, v1, r.Dequeue())
	assert.Equal(t, int64(7), r.Occupancy())
	assert.Same(t, v2, r.Dequeue())
	assert.Equal(t, int64(0), r.Occupancy())
	assert.Equal(t, int64(2), r.Entered())
}

func TestEmptyRoadPanics(t *testing.T) {
	r := road.NewExitRoad("X", 60, 100)
	assert.Panics(t, func() { r.Dequeue() })
	assert.Panics(t, func() { r.Front() })
}

func TestTimeOfRoute(t *testing.T) {
	// time = ceil(length/1000 * 3600/speed)
	assert.Equal(t, int64(30), road.NewExitRoad("a", 60, 500).TimeOfRoute())
	assert.Equal(t, int64(90), road.NewExitRoad("b", 80, 2000).TimeOfRoute())
	assert.Equal(t, int64(48), road.NewExitRoad("c", 30, 400).TimeOfRoute())
	assert.Equal(t, int64(18), road.NewExitRoad("d", 60, 300).TimeOfRoute())
	assert.Equal(t, int64(45), road.NewExitRoad("e", 40, 500).TimeOfRoute())
	// 不整除时向上取整：250m@60km/h = 15s，251m则为16s
	assert.Equal(t, int64(15), road.NewExitRoad("f", 60, 250).TimeOfRoute())
	assert.Equal(t, int64(16), road.NewExitRoad("g", 60, 251).TimeOfRoute())
}

func TestEntryRoadTurnSampling(t *testing.T) {
	gen := randengine.New(1)
	// 左转概率为1，所有车辆都应左转
	e := road.NewEntryRoad("E", 60, 500, 10, 0, 1, 0, 0, gen)
	for i := 0; i < 20; i++ {
		v := vehicle.New(int64(i), 5)
		assert.NoError(t, e.Enqueue(v))
		assert.Equal(t, vehicle.TurnLeft, v.Turn())
	}
}

func TestEntryRoadInputFrequency(t *testing.T) {
	gen := randengine.New(1)
	// 无抖动时间隔恒为均值
	e := road.NewEntryRoad("E", 60, 500, 10, 0, 1, 0, 0, gen)
	for i := 0; i < 10; i++ {
		assert.Equal(t, int64(10), e.InputFrequency())
	}
	// 有抖动时间隔落在[mean-jitter, mean+jitter]内
	e = road.NewEntryRoad("E2", 60, 500, 20, 5, 1, 0, 0, gen)
	for i := 0; i < 100; i++ {
		f := e.InputFrequency()
		assert.GreaterOrEqual(t, f, int64(15))
		assert.LessOrEqual(t, f, int64(25))
	}
	assert.True(t, e.HasInput())
	e = road.NewEntryRoad("E3", 60, 300, 0, 0, 1, 0, 0, gen)
	assert.False(t, e.HasInput())
}

func TestManagerWiring(t *testing.T) {
	c := config.Default()
	m, err := road.NewManager(c.Network, randengine.New(0))
	assert.NoError(t, err)
	assert.Len(t, m.Entries(), 8)
	assert.Len(t, m.Exits(), 6)
	assert.Equal(t, 6, m.LiveInputs())
	assert.Equal(t, int64(0), m.VehiclesOnRoads())

	// N1_S -> (C1_L, S1_S, O1_O)
	i, ok := m.EntryIndex("N1_S")
	assert.True(t, ok)
	n1s := m.Entry(i)

	left := n1s.Destination(vehicle.TurnLeft)
	assert.False(t, left.ToExit)
	assert.Equal(t, "C1_L", m.Entry(left.Index).Name())

	straight := n1s.Destination(vehicle.TurnStraight)
	assert.True(t, straight.ToExit)
	assert.Equal(t, "S1_S", m.Exit(straight.Index).Name())

	right := n1s.Destination(vehicle.TurnRight)
	assert.True(t, right.ToExit)
	assert.Equal(t, "O1_O", m.Exit(right.Index).Name())

	// C1_O -> (S1_S, O1_O, N1_N)
	i, ok = m.EntryIndex("C1_O")
	assert.True(t, ok)
	c1o := m.Entry(i)
	assert.Equal(t, "S1_S", m.Exit(c1o.Destination(vehicle.TurnLeft).Index).Name())
	assert.Equal(t, "O1_O", m.Exit(c1o.Destination(vehicle.TurnStraight).Index).Name())
	assert.Equal(t, "N1_N", m.Exit(c1o.Destination(vehicle.TurnRight).Index).Name())

	assert.Panics(t, func() { m.Entry(100) })
	assert.Panics(t, func() { m.Exit(-1) })
}

func TestManagerRejectsTinyRoad(t *testing.T) {
	c := config.Default()
	c.Network.Exits[0].Length = vehicle.MinLength - 1
	_, err := road.NewManager(c.Network, randengine.New(0))
	assert.Error(t, err)
}
