// README: Shared value types used across modules.
package types

type ID string

type Point struct {
	Lat float64
	Lng float64
}

// Role mirrors the role claim carried on the authenticated user.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleDriver     Role = "driver"
	RoleDispatcher Role = "dispatcher"
	RolePassenger  Role = "passenger"
)
