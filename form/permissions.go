// form/permissions.go
package form

import (
	"encoding/json"
	"sort"

	"github.com/buildtrack/epc-console/model"
)

// PermissionSelection is the checkbox state of the group editor: a set of
// permission ids, never an array with duplicates. The four ids of a row
// (add/change/delete/view) are independent and toggled one by one; "select
// all" only ever touches the rows currently visible under the active filter.
type PermissionSelection struct {
	ids map[int64]struct{}
}

func NewPermissionSelection() *PermissionSelection {
	return &PermissionSelection{ids: make(map[int64]struct{})}
}

// SelectionFromGroup seeds the editor from a fetched group payload, reading
// the flat permission list when present and falling back to the nested
// permission_list breakdown otherwise. Re-submitting an untouched selection
// yields exactly the ids derived here.
func SelectionFromGroup(group model.Group) *PermissionSelection {
	s := NewPermissionSelection()
	for _, id := range group.Permissions {
		s.Select(id)
	}
	if len(group.Permissions) == 0 && len(group.PermissionList) > 0 {
		for _, id := range ExtractPermissionIDs(group.PermissionList) {
			s.Select(id)
		}
	}
	return s
}

// Select adds one permission id.
func (s *PermissionSelection) Select(id int64) {
	if id != 0 {
		s.ids[id] = struct{}{}
	}
}

// Deselect removes one permission id.
func (s *PermissionSelection) Deselect(id int64) {
	delete(s.ids, id)
}

// Toggle flips one permission id.
func (s *PermissionSelection) Toggle(id int64) {
	if s.Has(id) {
		s.Deselect(id)
	} else {
		s.Select(id)
	}
}

// Has reports whether the id is selected.
func (s *PermissionSelection) Has(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected ids.
func (s *PermissionSelection) Len() int {
	return len(s.ids)
}

// AllSelected reports whether every id of every given row is selected. The
// caller passes the currently filtered rows, so the "select all" checkbox
// reflects only what is visible.
func (s *PermissionSelection) AllSelected(rows []model.Permission) bool {
	if len(rows) == 0 {
		return false
	}
	for _, row := range rows {
		for _, id := range row.IDs() {
			if !s.Has(id) {
				return false
			}
		}
	}
	return true
}

// SelectAll selects every id of the given rows; rows outside the slice are
// untouched.
func (s *PermissionSelection) SelectAll(rows []model.Permission) {
	for _, row := range rows {
		for _, id := range row.IDs() {
			s.Select(id)
		}
	}
}

// DeselectAll deselects every id of the given rows; rows outside the slice
// are untouched.
func (s *PermissionSelection) DeselectAll(rows []model.Permission) {
	for _, row := range rows {
		for _, id := range row.IDs() {
			s.Deselect(id)
		}
	}
}

// ToggleAll applies the "select all" checkbox to the given rows.
func (s *PermissionSelection) ToggleAll(rows []model.Permission) {
	if s.AllSelected(rows) {
		s.DeselectAll(rows)
	} else {
		s.SelectAll(rows)
	}
}

// IDs returns the selected ids in ascending order, ready for the group
// create/update payload.
func (s *PermissionSelection) IDs() []int64 {
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ExtractPermissionIDs pulls permission ids out of the nested permission_list
// structure. The shape varies between deployments (objects of objects whose
// leaves are either plain ids or {id: ...} objects), so the walk is
// tolerant: it collects every add/change/delete/view leaf it can interpret
// and ignores the rest.
func ExtractPermissionIDs(raw json.RawMessage) []int64 {
	var root any
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil
	}

	seen := make(map[int64]struct{})
	var walk func(node any)
	walk = func(node any) {
		switch v := node.(type) {
		case map[string]any:
			for key, child := range v {
				switch key {
				case "add", "change", "delete", "view":
					if id, ok := leafID(child); ok {
						seen[id] = struct{}{}
						continue
					}
				}
				walk(child)
			}
		case []any:
			for _, child := range v {
				walk(child)
			}
		}
	}
	walk(root)

	out := make([]int64, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func leafID(node any) (int64, bool) {
	switch v := node.(type) {
	case float64:
		return int64(v), v != 0
	case map[string]any:
		if id, ok := v["id"].(float64); ok {
			return int64(id), id != 0
		}
	}
	return 0, false
}
