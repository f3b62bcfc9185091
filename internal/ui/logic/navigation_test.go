package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigatorScrollsWithSelection(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(20, 5)

	for i := 0; i < 7; i++ {
		n.Move(1)
	}
	assert.Equal(t, 7, n.GetSelectedIndex())
	assert.Equal(t, 3, n.GetViewportOffset())

	start, end := n.Visible()
	assert.Equal(t, 3, start)
	assert.Equal(t, 8, end)

	n.Move(-6)
	assert.Equal(t, 1, n.GetSelectedIndex())
	assert.Equal(t, 1, n.GetViewportOffset())
}

func TestNavigatorClampsToBounds(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(3, 10)

	n.Move(-1)
	assert.Equal(t, 0, n.GetSelectedIndex())

	n.End()
	assert.Equal(t, 2, n.GetSelectedIndex())
	n.Move(5)
	assert.Equal(t, 2, n.GetSelectedIndex())
	assert.Equal(t, 0, n.GetViewportOffset())
}

func TestNavigatorPaging(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(50, 10)

	n.PageDown()
	assert.Equal(t, 8, n.GetSelectedIndex())
	n.PageDown()
	assert.Equal(t, 16, n.GetSelectedIndex())
	n.PageUp()
	assert.Equal(t, 8, n.GetSelectedIndex())
	n.Home()
	assert.Equal(t, 0, n.GetSelectedIndex())
	assert.Equal(t, 0, n.GetViewportOffset())
}

func TestNavigatorShrinkingListPullsSelectionBack(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(30, 5)
	n.End()
	assert.Equal(t, 29, n.GetSelectedIndex())

	n.UpdateState(4, 5)
	assert.Equal(t, 3, n.GetSelectedIndex())
	assert.Equal(t, 0, n.GetViewportOffset())

	n.UpdateState(0, 5)
	assert.Equal(t, 0, n.GetSelectedIndex())
	start, end := n.Visible()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}
