// client/clients.go

// Package client declares one resource client per backend resource. Every
// client is constructor-injected with the shared transport and the
// invalidation store; mutations declare the list queries they invalidate so
// bound collections refetch without hand-wired callbacks.
package client

import (
	"github.com/buildtrack/epc-console/store"
	"github.com/buildtrack/epc-console/transport"
)

// Clients bundles every resource client over one transport and store.
type Clients struct {
	Users            *UserClient
	Departments      *DepartmentClient
	Groups           *GroupClient
	Projects         *ProjectClient
	Drawings         *DrawingClient
	Inspections      *InspectionClient
	QualityItems     *QualityItemClient
	Vendors          *VendorClient
	ElectricityLines *ElectricityLineClient
}

func New(api *transport.Client, st *store.Store) *Clients {
	return &Clients{
		Users:            NewUserClient(api, st),
		Departments:      NewDepartmentClient(api, st),
		Groups:           NewGroupClient(api, st),
		Projects:         NewProjectClient(api),
		Drawings:         NewDrawingClient(api, st),
		Inspections:      NewInspectionClient(api, st),
		QualityItems:     NewQualityItemClient(api, st),
		Vendors:          NewVendorClient(api, st),
		ElectricityLines: NewElectricityLineClient(api, st),
	}
}
