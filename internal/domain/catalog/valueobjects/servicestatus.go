package valueobjects

// ServiceStatus is the sale status of a catalog service definition.
type ServiceStatus string

const (
	ServiceStatusOnSale  ServiceStatus = "on_sale"
	ServiceStatusOffSale ServiceStatus = "off_sale"
)

func (s ServiceStatus) IsValid() bool {
	switch s {
	case ServiceStatusOnSale, ServiceStatusOffSale:
		return true
	default:
		return false
	}
}

func (s ServiceStatus) IsOnSale() bool {
	return s == ServiceStatusOnSale
}

func (s ServiceStatus) String() string {
	return string(s)
}
