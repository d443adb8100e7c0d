package entity

// RegistryEntry is one resource's row in a per-equipment-class status registry
type RegistryEntry struct {
	ResourceID string
	Status     string
}

// Registry statuses with special meaning. Terminal statuses mark gear that
// has left the fleet and must never surface as a service status.
const (
	StatusLeftInventory = "Left Inventory"
	StatusDisposed      = "Disposed"
	StatusRTR           = "RTR"
	StatusServiced      = "Serviced"
)

// Sentinel service statuses attached when a registry lookup cannot resolve
const (
	ServiceNoMatchingResource = "No Matching Resource Found"
	ServiceNoRegistry         = "No Registry Configured"
	ServiceStatusUnknown      = "No Service Status Found"
)

// IsTerminalStatus reports whether a registry status means the resource is
// gone from inventory
func IsTerminalStatus(status string) bool {
	return status == StatusLeftInventory || status == StatusDisposed
}
