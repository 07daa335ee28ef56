// Package catalog holds the read-only service catalog consumed by the
// subscription core. Definitions are looked up once per orchestration call and
// never mutated here.
package catalog

import (
	"fmt"
	"time"

	vo "github.com/recero-inc/recero/internal/domain/catalog/valueobjects"
)

// ServiceDef is one sellable service definition: code, display name, list
// price and sale status.
type ServiceDef struct {
	id        uint
	code      vo.ServiceCode
	name      string
	listPrice int64
	status    vo.ServiceStatus
	createdAt time.Time
	updatedAt time.Time
}

func NewServiceDef(code vo.ServiceCode, name string, listPrice int64) (*ServiceDef, error) {
	if !code.IsValid() {
		return nil, fmt.Errorf("invalid service code: %s", code)
	}
	if name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if listPrice < 0 {
		return nil, fmt.Errorf("list price cannot be negative")
	}

	now := time.Now().UTC()
	return &ServiceDef{
		code:      code,
		name:      name,
		listPrice: listPrice,
		status:    vo.ServiceStatusOnSale,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func (s *ServiceDef) ID() uint                  { return s.id }
func (s *ServiceDef) Code() vo.ServiceCode      { return s.code }
func (s *ServiceDef) Name() string              { return s.name }
func (s *ServiceDef) ListPrice() int64          { return s.listPrice }
func (s *ServiceDef) Status() vo.ServiceStatus  { return s.status }
func (s *ServiceDef) CreatedAt() time.Time      { return s.createdAt }
func (s *ServiceDef) UpdatedAt() time.Time      { return s.updatedAt }

// SetID sets the definition ID after persistence.
func (s *ServiceDef) SetID(id uint) { s.id = id }

func ReconstructServiceDef(
	id uint,
	code vo.ServiceCode,
	name string,
	listPrice int64,
	status vo.ServiceStatus,
	createdAt, updatedAt time.Time,
) *ServiceDef {
	return &ServiceDef{
		id:        id,
		code:      code,
		name:      name,
		listPrice: listPrice,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Snapshot is a stable view of the catalog taken once at the start of an
// orchestration call. The pricing validator reads it, never the repository.
type Snapshot map[vo.ServiceCode]*ServiceDef

// Lookup returns the definition for code, or nil when absent.
func (s Snapshot) Lookup(code vo.ServiceCode) *ServiceDef {
	return s[code]
}
