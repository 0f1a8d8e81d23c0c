package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T, ids ...string) *Catalog {
	t.Helper()
	return New(NewFixedIDSource(ids...))
}

func TestAddProduct_Basic(t *testing.T) {
	c := newTestCatalog(t, "p-1")

	p, err := c.AddProduct("Кола")
	require.NoError(t, err)
	assert.Equal(t, "p-1", p.ID)
	assert.Equal(t, "Кола", p.Name)
	assert.Empty(t, p.SectionNames)

	products := c.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "Кола", products[0].Name)
}

func TestAddProduct_DuplicateName(t *testing.T) {
	c := newTestCatalog(t, "p-1")

	_, err := c.AddProduct("Яблоко")
	require.NoError(t, err)

	_, err = c.AddProduct("Яблоко")
	require.Error(t, err)
	assert.True(t, IsDuplicateName(err))
	assert.Contains(t, err.Error(), `"Яблоко"`)

	// No partial state change on rejection.
	assert.Len(t, c.Products(), 1)
}

func TestAddProduct_DuplicateIsCaseSensitive(t *testing.T) {
	c := newTestCatalog(t, "p-1", "p-2")

	_, err := c.AddProduct("Milk")
	require.NoError(t, err)

	// Different case is a different name as stored.
	_, err = c.AddProduct("milk")
	require.NoError(t, err)
	assert.Len(t, c.Products(), 2)
}

func TestDeleteProduct(t *testing.T) {
	c := newTestCatalog(t, "p-1", "p-2")

	_, err := c.AddProduct("Кола")
	require.NoError(t, err)
	p, err := c.AddProduct("Вода")
	require.NoError(t, err)

	require.NoError(t, c.DeleteProduct(p.ID))

	products := c.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "Кола", products[0].Name)

	err = c.DeleteProduct("missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestAssignSections_FullOverwrite(t *testing.T) {
	c := newTestCatalog(t, "p-1")

	p, err := c.AddProduct("Чипсы Lays")
	require.NoError(t, err)

	require.NoError(t, c.AssignSections(p.ID, []string{"Бакалея"}))
	require.NoError(t, c.AssignSections(p.ID, []string{"Напитки", "Касса"}))

	got, ok := c.FindProductByID(p.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"Напитки", "Касса"}, got.SectionNames)
}

func TestAssignSections_NoValidationAgainstSections(t *testing.T) {
	c := newTestCatalog(t, "p-1")

	p, err := c.AddProduct("Вода")
	require.NoError(t, err)

	// Soft references: assignment accepts names with no backing section.
	require.NoError(t, c.AssignSections(p.ID, []string{"НетТакойСекции"}))

	got, _ := c.FindProductByID(p.ID)
	assert.Equal(t, []string{"НетТакойСекции"}, got.SectionNames)
}

func TestAddSection_Duplicate(t *testing.T) {
	c := newTestCatalog(t, "s-1")

	_, err := c.AddSection("Фрукты", Rect{X: 10, Y: 10, W: 50, H: 40})
	require.NoError(t, err)

	_, err = c.AddSection("Фрукты", Rect{X: 0, Y: 0, W: 1, H: 1})
	require.Error(t, err)
	assert.True(t, IsDuplicateName(err))
	assert.Len(t, c.Sections(), 1)
}

func TestDeleteSection_StripsReferences(t *testing.T) {
	c := newTestCatalog(t, "s-1", "s-2", "p-1")

	s1, err := c.AddSection("Молоко", Rect{W: 10, H: 10})
	require.NoError(t, err)
	_, err = c.AddSection("Бакалея", Rect{X: 20, W: 10, H: 10})
	require.NoError(t, err)

	p, err := c.AddProduct("Сыр")
	require.NoError(t, err)
	require.NoError(t, c.AssignSections(p.ID, []string{"Молоко", "Бакалея"}))

	require.NoError(t, c.DeleteSection(s1.ID))

	got, _ := c.FindProductByID(p.ID)
	assert.Equal(t, []string{"Бакалея"}, got.SectionNames)
	assert.Len(t, c.Sections(), 1)
}

func TestProducts_ReturnsCopies(t *testing.T) {
	c := newTestCatalog(t, "p-1")

	p, err := c.AddProduct("Кола")
	require.NoError(t, err)
	require.NoError(t, c.AssignSections(p.ID, []string{"Напитки"}))

	out := c.Products()
	out[0].SectionNames[0] = "mutated"
	out[0].Name = "mutated"

	got, _ := c.FindProductByID(p.ID)
	assert.Equal(t, "Кола", got.Name)
	assert.Equal(t, []string{"Напитки"}, got.SectionNames)
}

func TestEmptyCatalog_ReturnsEmptyNotNil(t *testing.T) {
	c := newTestCatalog(t)

	assert.NotNil(t, c.Products())
	assert.NotNil(t, c.Sections())
	assert.Empty(t, c.Products())
	assert.Empty(t, c.Sections())
}

func TestLoad_ReplacesState(t *testing.T) {
	c := newTestCatalog(t)

	c.Load(
		[]Product{{ID: "p-1", Name: "Кола", SectionNames: []string{"Напитки"}}},
		[]Section{{ID: "s-1", Name: "Напитки", Coords: Rect{W: 5, H: 5}}},
	)

	p, ok := c.FindProductByName("Кола")
	require.True(t, ok)
	assert.Equal(t, "p-1", p.ID)
	assert.Len(t, c.Sections(), 1)
}
