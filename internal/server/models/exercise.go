package models

// Exercise is a shared catalog entry. It is reference data: seeded
// administratively, referenced by workout-exercise links, never owned by
// or duplicated per user.
type Exercise struct {
	ID       int64
	Name     string
	Category string
}
