// store/collection_test.go
package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	logger "github.com/buildtrack/epc-console/logging"
	"github.com/buildtrack/epc-console/model"
	"github.com/buildtrack/epc-console/store"
)

func TestMain(m *testing.M) {
	logger.InitLogger("")
	m.Run()
}

func departmentCollection(items []model.Department, pageSize int) *store.Collection[model.Department] {
	fetch := func(ctx context.Context) ([]model.Department, error) {
		return items, nil
	}
	match := store.MatchFields(func(d model.Department) []string {
		return []string{d.DepartmentName}
	})
	return store.NewCollection(fetch, match, pageSize)
}

func TestCollection_FilterResetsPage(t *testing.T) {
	items := make([]model.Department, 0, 25)
	for i := 0; i < 25; i++ {
		items = append(items, model.Department{ID: int64(i + 1), DepartmentName: "Dept"})
	}
	items[0].DepartmentName = "Civil Works"

	c := departmentCollection(items, 10)
	require.NoError(t, c.Refetch(context.Background()))

	c.SetPage(2)
	assert.Equal(t, 2, c.Page())

	// Applying a filter moves back to page 0 so the view cannot land on an
	// out-of-range empty page.
	c.SetFilter("civil")
	assert.Equal(t, 0, c.Page())
	assert.Len(t, c.Visible(), 1)

	// Clearing the filter restores the exact unfiltered first-page state.
	c.SetFilter("")
	assert.Equal(t, 0, c.Page())
	visible := c.Visible()
	require.Len(t, visible, 10)
	assert.Equal(t, int64(1), visible[0].ID)
	assert.Equal(t, 25, c.Len())
}

func TestCollection_FilterIsCaseInsensitiveSubstring(t *testing.T) {
	items := []model.Department{
		{ID: 1, DepartmentName: "Civil Works"},
		{ID: 2, DepartmentName: "Electrical"},
		{ID: 3, DepartmentName: "civil maintenance"},
	}
	c := departmentCollection(items, 10)
	require.NoError(t, c.Refetch(context.Background()))

	c.SetFilter("CIVIL")
	filtered := c.Filtered()
	require.Len(t, filtered, 2)
	// Server order is preserved; the collection never re-orders.
	assert.Equal(t, int64(1), filtered[0].ID)
	assert.Equal(t, int64(3), filtered[1].ID)
}

func TestCollection_VisibleSlicesFilteredSet(t *testing.T) {
	items := make([]model.Department, 0, 7)
	for i := 0; i < 7; i++ {
		items = append(items, model.Department{ID: int64(i + 1), DepartmentName: "Dept"})
	}
	c := departmentCollection(items, 3)
	require.NoError(t, c.Refetch(context.Background()))

	assert.Equal(t, 3, c.PageCount())

	c.SetPage(2)
	visible := c.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, int64(7), visible[0].ID)

	// Page requests beyond the filtered range clamp to the last page.
	c.SetPage(9)
	assert.Equal(t, 2, c.Page())
}

func TestCollection_BindToRefetchesOnInvalidation(t *testing.T) {
	fetches := 0
	fetch := func(ctx context.Context) ([]model.Department, error) {
		fetches++
		return []model.Department{{ID: int64(fetches), DepartmentName: "Dept"}}, nil
	}
	c := store.NewCollection(fetch, store.MatchFields(func(d model.Department) []string {
		return []string{d.DepartmentName}
	}), 10)

	st := store.New()
	c.BindTo(st, store.TagDepartments)

	st.Invalidate(context.Background(), store.TagDepartments)
	assert.Equal(t, 1, fetches)

	// Unrelated tags leave the collection alone.
	st.Invalidate(context.Background(), store.TagUsers)
	assert.Equal(t, 1, fetches)

	st.Invalidate(context.Background(), store.TagDepartments)
	assert.Equal(t, 2, fetches)
	visible := c.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, int64(2), visible[0].ID)
}
