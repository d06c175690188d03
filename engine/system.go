package engine

// System is one stage of the tick pipeline
// Update runs once per unpaused tick in the order the simulation registered it
type System interface {
	Name() string
	Update()
}
