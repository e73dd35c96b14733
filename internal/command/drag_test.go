package command

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDragTracker_Drop(t *testing.T) {
	var d DragTracker
	require.Equal(t, DragIdle, d.State())

	d.Press("c")
	require.Equal(t, DragDragging, d.State())
	d.Over("b")
	require.Equal(t, "b", d.Hover())

	drop, ok := d.Release("a")
	require.True(t, ok)
	require.Equal(t, Drop{MovedID: "c", TargetID: "a"}, drop)
	require.Equal(t, DragIdle, d.State())
	require.Empty(t, d.Source())
}

func TestDragTracker_NoDrop(t *testing.T) {
	var d DragTracker

	_, ok := d.Release("a")
	require.False(t, ok, "release without press")

	d.Press("a")
	_, ok = d.Release("a")
	require.False(t, ok, "release on the pressed block is a click")

	d.Press("a")
	_, ok = d.Release("")
	require.False(t, ok, "release outside any block")

	d.Press("a")
	d.Cancel()
	_, ok = d.Release("b")
	require.False(t, ok, "cancelled drag")

	d.Press("")
	require.Equal(t, DragIdle, d.State())
}

func TestDragTracker_OverIgnoredWhenIdle(t *testing.T) {
	var d DragTracker
	d.Over("a")
	require.Empty(t, d.Hover())
}
