package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnalyticsDefaults(t *testing.T) {
	a := NewAnalytics()

	assert.Equal(t, NoDirection, a.Direction)
	assert.Equal(t, NoStatus, a.Status)
	assert.Zero(t, a.MoveSpeed)
	assert.Equal(t, 0, a.LaneCount)
	assert.Equal(t, LaneUnset, a.ReverseLane)
	for _, lane := range a.Lanes {
		assert.Equal(t, LaneUnset, lane)
	}
	assert.Empty(t, a.CrossedLanes())
}

func TestCrossedLanesHonorsCount(t *testing.T) {
	a := NewAnalytics()
	a.Lanes = [MaxLanes]int32{3, 7, -1, -1}
	a.LaneCount = 2
	a.ReverseLane = -1

	// Only the first LaneCount slots are meaningful.
	assert.Equal(t, []int32{3, 7}, a.CrossedLanes())
}

func TestCrossedLanesClampsBadCounts(t *testing.T) {
	a := NewAnalytics()
	a.Lanes = [MaxLanes]int32{1, 2, 3, 4}

	a.LaneCount = -3
	assert.Empty(t, a.CrossedLanes())

	a.LaneCount = 99
	assert.Equal(t, []int32{1, 2, 3, 4}, a.CrossedLanes())
}

func TestSetAnalyticsValidatesLaneCount(t *testing.T) {
	msg := newPersonMsg(t)

	bad := NewAnalytics()
	bad.LaneCount = MaxLanes + 1
	err := msg.SetAnalytics(bad)
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.Nil(t, msg.Analytics())

	good := NewAnalytics()
	good.Direction = MoveLeftDown
	good.Status = StatusPersonLoitering
	good.LaneCount = 1
	good.Lanes[0] = 4
	require.NoError(t, msg.SetAnalytics(good))

	got := msg.Analytics()
	require.NotNil(t, got)
	assert.Equal(t, MoveLeftDown, got.Direction)
	assert.Equal(t, StatusPersonLoitering, got.Status)
	assert.Equal(t, []int32{4}, got.CrossedLanes())
}

func TestBehaviorFlagsIndependent(t *testing.T) {
	msg := newPersonMsg(t)

	assert.Equal(t, BehaviorFlags{}, msg.Flags())

	require.NoError(t, msg.SetFlags(BehaviorFlags{Loitering: true, Jaywalk: true}))
	f := msg.Flags()
	assert.True(t, f.Loitering)
	assert.True(t, f.Jaywalk)
	assert.False(t, f.LaneCross)
	assert.False(t, f.BreakIn)
}

func TestDirectionAndStatusNames(t *testing.T) {
	assert.Equal(t, "none", NoDirection.String())
	assert.Equal(t, "right-up", MoveRightUp.String())
	assert.Equal(t, "none", NoStatus.String())
	assert.Equal(t, "person-jaywalk", StatusPersonJaywalk.String())
	assert.Equal(t, "vehicle-long-park", StatusVehicleLongPark.String())
}
