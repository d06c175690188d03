package component

// Trail is the core's view of a particle trail owned by the rendering side
// Handle is opaque to the simulation; Age drives when the renderer stops updating effects
type Trail struct {
	Handle uint64
	Age    int
	Frozen bool
}
