package component

// Parent links a child entity to its owner. Entity handles are stored as
// uint64 to keep this package free of the ecs import.
type Parent struct {
	Entity uint64
}

var ParentComponent = NewComponent[Parent]()

type Children struct {
	Entities []uint64
}

var ChildrenComponent = NewComponent[Children]()
