package entity

// DriverAvailability enumerates whether a driver can take new deliveries.
type DriverAvailability string

const (
	// DriverAvailable means the driver can be assigned new invoices.
	DriverAvailable DriverAvailability = "متاح"
	// DriverBusy means the driver is out on deliveries.
	DriverBusy DriverAvailability = "مشغول"
)

// Valid reports whether a is a known availability value.
func (a DriverAvailability) Valid() bool {
	return a == DriverAvailable || a == DriverBusy
}

// Driver represents a delivery representative.
type Driver struct {
	ID           string             `json:"id"`           // Sequential identifier, "DRV" + zero-padded number.
	Name         string             `json:"name"`         // Driver's full name.
	Phone        string             `json:"phone"`        // Contact number.
	Vehicle      string             `json:"vehicle"`      // Vehicle plate or fleet identifier.
	Availability DriverAvailability `json:"availability"` // Whether the driver can take new work.
	Deliveries   int                `json:"deliveries"`   // Cumulative completed deliveries.
	Returns      int                `json:"returns"`      // Cumulative returned invoices.
}
