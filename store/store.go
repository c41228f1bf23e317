// store/store.go
package store

import "context"

// Tag names one cached list query family. Each mutation declares the tags it
// invalidates; the store re-runs every query registered under those tags so
// no component has to hand a refetch callback around.
type Tag string

const (
	TagUsers            Tag = "users"
	TagDepartments      Tag = "departments"
	TagGroups           Tag = "groups"
	TagPermissions      Tag = "permissions"
	TagProjects         Tag = "projects"
	TagDrawings         Tag = "drawings"
	TagInspections      Tag = "inspections"
	TagQualityItems     Tag = "quality_items"
	TagVendors          Tag = "vendors"
	TagElectricityLines Tag = "electricity_lines"
	TagAssignments      Tag = "assignments"
)

// Store is the invalidation registry shared by all resource clients and
// collections.
type Store struct {
	bus *EventBus
}

func New() *Store {
	return &Store{bus: NewEventBus()}
}

// Register binds a refetch function to one or more tags. Collections call
// this through BindTo.
func (s *Store) Register(refetch func(context.Context) error, tags ...Tag) {
	for _, tag := range tags {
		s.bus.Subscribe(string(tag), func(ctx context.Context, _ Event) error {
			return refetch(ctx)
		})
	}
}

// Invalidate re-runs every query registered under the given tags.
func (s *Store) Invalidate(ctx context.Context, tags ...Tag) {
	for _, tag := range tags {
		s.bus.Publish(ctx, string(tag), nil)
	}
}
