package component

// GravityScale multiplies world gravity for a dynamic body. The player holds
// 0 in the menu, 1 while floating and 10 while a contact is held.
type GravityScale struct {
	Scale float64
}

var GravityScaleComponent = NewComponent[GravityScale]()
