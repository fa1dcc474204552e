package settings

import (
	"testing"

	"panaderia/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoCategoryDoc() entity.SiteSettings {
	return entity.SiteSettings{
		Categories: []entity.MenuCategory{
			{
				ID:     "cat-a",
				NameEs: "Pan Dulce",
				NameEn: "Sweet Bread",
				Items: []entity.MenuItem{
					{ID: "item-1", NameEs: "Concha", NameEn: "Concha", Price: "$1.50"},
					{ID: "item-2", NameEs: "Cuerno", NameEn: "Croissant", Price: "$2.00"},
				},
			},
			{ID: "cat-b", NameEs: "Pasteles", NameEn: "Cakes", Items: []entity.MenuItem{}},
		},
	}
}

func TestAddCategory(t *testing.T) {
	doc := twoCategoryDoc()

	out, category := AddCategory(doc)
	require.Len(t, out.Categories, 3)
	assert.Equal(t, category, out.Categories[2])
	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "Nueva categoría", category.NameEs)
	assert.Equal(t, "[EN: Nueva categoría]", category.NameEn)
	assert.Empty(t, category.Items)

	// Input untouched.
	assert.Len(t, doc.Categories, 2)
}

func TestAddCategory_FreshIDs(t *testing.T) {
	doc := entity.SiteSettings{}

	_, first := AddCategory(doc)
	_, second := AddCategory(doc)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestDeleteCategory(t *testing.T) {
	doc := twoCategoryDoc()

	out, err := DeleteCategory(doc, 0)
	require.NoError(t, err)
	require.Len(t, out.Categories, 1)
	assert.Equal(t, "cat-b", out.Categories[0].ID)
	assert.Len(t, doc.Categories, 2)
}

func TestDeleteCategory_OutOfRange(t *testing.T) {
	doc := twoCategoryDoc()

	_, err := DeleteCategory(doc, 2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = DeleteCategory(doc, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSelectionAfterDelete(t *testing.T) {
	assert.Equal(t, 0, SelectionAfterDelete(twoCategoryDoc()))
	assert.Equal(t, NoSelection, SelectionAfterDelete(entity.SiteSettings{}))
}

func TestAddItem(t *testing.T) {
	doc := twoCategoryDoc()

	out, item, err := AddItem(doc, 1)
	require.NoError(t, err)
	require.Len(t, out.Categories[1].Items, 1)
	assert.Equal(t, item, out.Categories[1].Items[0])
	assert.Equal(t, "Nuevo producto", item.NameEs)
	assert.Equal(t, "[EN: Nuevo producto]", item.NameEn)
	assert.Empty(t, item.Price)
	assert.False(t, item.Popular)

	// The sibling category is untouched.
	assert.Len(t, out.Categories[0].Items, 2)
	assert.Empty(t, doc.Categories[1].Items)
}

func TestAddItem_OutOfRange(t *testing.T) {
	_, _, err := AddItem(twoCategoryDoc(), 5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestDeleteItem_PreservesOrder(t *testing.T) {
	doc := twoCategoryDoc()

	out, err := DeleteItem(doc, 0, 0)
	require.NoError(t, err)
	require.Len(t, out.Categories[0].Items, 1)
	assert.Equal(t, "item-2", out.Categories[0].Items[0].ID)
	assert.Len(t, doc.Categories[0].Items, 2)
}

func TestDeleteItem_OutOfRange(t *testing.T) {
	doc := twoCategoryDoc()

	_, err := DeleteItem(doc, 0, 2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = DeleteItem(doc, 3, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestLunchSpecials_AddAndDelete(t *testing.T) {
	doc := entity.SiteSettings{}

	out, special := AddLunchSpecial(doc)
	require.Len(t, out.LunchSpecials, 1)
	assert.Equal(t, "Nuevo lonche", special.NameEs)
	assert.Equal(t, "[EN: Nuevo lonche]", special.NameEn)

	out2, err := DeleteLunchSpecial(out, 0)
	require.NoError(t, err)
	assert.Empty(t, out2.LunchSpecials)
	assert.Len(t, out.LunchSpecials, 1)

	_, err = DeleteLunchSpecial(out2, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSetCategoryName_FillsEnglish(t *testing.T) {
	doc := twoCategoryDoc()

	out, err := SetCategoryName(doc, 0, "Galletas")
	require.NoError(t, err)
	assert.Equal(t, "Galletas", out.Categories[0].NameEs)
	assert.Equal(t, "[EN: Galletas]", out.Categories[0].NameEn)
	assert.Equal(t, "Pan Dulce", doc.Categories[0].NameEs)
}

func TestSetItemField(t *testing.T) {
	doc := twoCategoryDoc()

	out, err := SetItemField(doc, 0, 0, ItemNameEs, "Oreja")
	require.NoError(t, err)
	assert.Equal(t, "Oreja", out.Categories[0].Items[0].NameEs)
	// The Spanish half drags the English half along.
	assert.Equal(t, "[EN: Oreja]", out.Categories[0].Items[0].NameEn)

	out, err = SetItemField(out, 0, 0, ItemNameEn, "Palmier")
	require.NoError(t, err)
	assert.Equal(t, "Palmier", out.Categories[0].Items[0].NameEn)
	assert.Equal(t, "Oreja", out.Categories[0].Items[0].NameEs)

	out, err = SetItemField(out, 0, 0, ItemPrice, "$3.00")
	require.NoError(t, err)
	assert.Equal(t, "$3.00", out.Categories[0].Items[0].Price)

	_, err = SetItemField(out, 0, 0, ItemField("bogus"), "x")
	require.Error(t, err)
}

func TestSetItemPopular(t *testing.T) {
	doc := twoCategoryDoc()

	out, err := SetItemPopular(doc, 0, 1, true)
	require.NoError(t, err)
	assert.True(t, out.Categories[0].Items[1].Popular)
	assert.False(t, doc.Categories[0].Items[1].Popular)

	out, err = SetItemPopular(out, 0, 1, false)
	require.NoError(t, err)
	assert.False(t, out.Categories[0].Items[1].Popular)
}
