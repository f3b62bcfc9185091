package logic

// Navigator handles selection and viewport management for a flat list
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator
func NewNavigator() *Navigator {
	return &Navigator{viewportHeight: 1}
}

// UpdateState updates the navigator's list size and viewport height, keeping
// the selection in range
func (n *Navigator) UpdateState(totalItems, viewportHeight int) {
	if totalItems < 0 {
		totalItems = 0
	}
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	n.totalItems = totalItems
	n.viewportHeight = viewportHeight
	n.clamp()
	n.ensureSelectedVisible()
}

// Reset moves the selection back to the top
func (n *Navigator) Reset() {
	n.selectedIndex = 0
	n.viewportOffset = 0
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// GetViewportHeight returns the number of rows available for items
func (n *Navigator) GetViewportHeight() int {
	return n.viewportHeight
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	n.selectedIndex = index
	n.clamp()
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// Move shifts the selection by delta rows
func (n *Navigator) Move(delta int) {
	n.SetSelectedIndex(n.selectedIndex + delta)
}

// PageUp moves the selection up by one page
func (n *Navigator) PageUp() {
	n.Move(-n.pageSize())
}

// PageDown moves the selection down by one page
func (n *Navigator) PageDown() {
	n.Move(n.pageSize())
}

// Home jumps to the first item
func (n *Navigator) Home() {
	n.SetSelectedIndex(0)
}

// End jumps to the last item
func (n *Navigator) End() {
	n.SetSelectedIndex(n.totalItems - 1)
}

// Visible returns the half-open index range currently on screen
func (n *Navigator) Visible() (int, int) {
	end := n.viewportOffset + n.viewportHeight
	if end > n.totalItems {
		end = n.totalItems
	}
	return n.viewportOffset, end
}

func (n *Navigator) pageSize() int {
	// Leave some overlap
	size := n.viewportHeight - 2
	if size < 1 {
		size = 1
	}
	return size
}

func (n *Navigator) clamp() {
	if n.selectedIndex >= n.totalItems {
		n.selectedIndex = n.totalItems - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
}

// ensureSelectedVisible adjusts the viewport to keep the selected item visible
func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}

	// Never leave empty rows below the last item when scrolled
	maxOffset := n.totalItems - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
