package gimbal

// Event carries the two resulting region sizes of a split change, each
// formatted as a pixel length. Before + After always equals the container
// limit the engine was last measured with.
type Event struct {
	Before string
	After  string
}

// PointerInput is the tagged union of raw pointer notifications a host
// forwards into the engine. The host is responsible for target
// identification: a press lands here as either HandleDown or GlobalDown,
// never both.
type PointerInput interface {
	isPointerInput()
}

// HandleDown is a pointer press with the handle itself as the target.
// Pos is the pointer coordinate along the active axis.
type HandleDown struct {
	Pos int
}

// GlobalDown is a pointer press anywhere else.
type GlobalDown struct {
	Pos int
}

// GlobalUp is a pointer release, regardless of target.
type GlobalUp struct {
	Pos int
}

// Move is a pointer movement along the active axis.
type Move struct {
	Pos int
}

// DoubleClick is a double press on the handle, requesting a reset to the
// configured default position.
type DoubleClick struct{}

func (HandleDown) isPointerInput()  {}
func (GlobalDown) isPointerInput()  {}
func (GlobalUp) isPointerInput()    {}
func (Move) isPointerInput()        {}
func (DoubleClick) isPointerInput() {}
