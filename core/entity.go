package core

// Entity is a simulation object identifier
// Allocated monotonically per session, never reused until reset
type Entity uint64

// NoEntity is the zero identifier, never allocated
const NoEntity Entity = 0
