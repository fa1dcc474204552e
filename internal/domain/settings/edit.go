package settings

import (
	"panaderia/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrIndexOutOfRange is returned when an edit addresses a category or item
// index that does not exist in the document.
var ErrIndexOutOfRange = errors.New("index out of range")

// NoSelection marks "no category selected" in an editor after the last
// category is deleted.
const NoSelection = -1

// Every operation below returns a NEW document value and never mutates its
// input. Several editor views hold the same document at once; replacing the
// whole value on each edit is what keeps them from observing half-written
// state.

// AddCategory appends a new category with a fresh id, placeholder bilingual
// names and no items. It never fails.
func AddCategory(doc entity.SiteSettings) (entity.SiteSettings, entity.MenuCategory) {
	category := entity.MenuCategory{
		ID:     NewID(),
		NameEs: "Nueva categoría",
		NameEn: Placeholder("Nueva categoría"),
		Items:  []entity.MenuItem{},
	}

	out := doc
	out.Categories = append(copyCategories(doc.Categories), category)

	return out, category
}

// DeleteCategory removes the category at index together with all its items.
// Callers are expected to have confirmed this with the user first.
func DeleteCategory(doc entity.SiteSettings, index int) (entity.SiteSettings, error) {
	if index < 0 || index >= len(doc.Categories) {
		return doc, errors.Wrapf(ErrIndexOutOfRange, "category %d of %d", index, len(doc.Categories))
	}

	out := doc
	categories := copyCategories(doc.Categories)
	out.Categories = append(categories[:index], categories[index+1:]...)

	return out, nil
}

// SelectionAfterDelete resolves which category an editor should select after
// a deletion: the first remaining one, or none when the list is empty.
func SelectionAfterDelete(doc entity.SiteSettings) int {
	if len(doc.Categories) == 0 {
		return NoSelection
	}

	return 0
}

// AddItem appends a placeholder item to the category at catIndex.
func AddItem(doc entity.SiteSettings, catIndex int) (entity.SiteSettings, entity.MenuItem, error) {
	if catIndex < 0 || catIndex >= len(doc.Categories) {
		return doc, entity.MenuItem{}, errors.Wrapf(ErrIndexOutOfRange, "category %d of %d", catIndex, len(doc.Categories))
	}

	item := entity.MenuItem{
		ID:     NewID(),
		NameEs: "Nuevo producto",
		NameEn: Placeholder("Nuevo producto"),
		Price:  "",
	}

	out := doc
	categories := copyCategories(doc.Categories)
	categories[catIndex].Items = append(copyItems(categories[catIndex].Items), item)
	out.Categories = categories

	return out, item, nil
}

// DeleteItem removes the item at itemIndex from the category at catIndex,
// preserving the relative order of the remaining items.
func DeleteItem(doc entity.SiteSettings, catIndex, itemIndex int) (entity.SiteSettings, error) {
	if catIndex < 0 || catIndex >= len(doc.Categories) {
		return doc, errors.Wrapf(ErrIndexOutOfRange, "category %d of %d", catIndex, len(doc.Categories))
	}
	items := doc.Categories[catIndex].Items
	if itemIndex < 0 || itemIndex >= len(items) {
		return doc, errors.Wrapf(ErrIndexOutOfRange, "item %d of %d", itemIndex, len(items))
	}

	out := doc
	categories := copyCategories(doc.Categories)
	copied := copyItems(items)
	categories[catIndex].Items = append(copied[:itemIndex], copied[itemIndex+1:]...)
	out.Categories = categories

	return out, nil
}

// AddLunchSpecial appends a placeholder entry to the daily-lunch list.
func AddLunchSpecial(doc entity.SiteSettings) (entity.SiteSettings, entity.LunchSpecial) {
	special := entity.LunchSpecial{
		ID:     NewID(),
		NameEs: "Nuevo lonche",
		NameEn: Placeholder("Nuevo lonche"),
		Price:  "",
	}

	out := doc
	out.LunchSpecials = append(copyLunchSpecials(doc.LunchSpecials), special)

	return out, special
}

// DeleteLunchSpecial removes the entry at index from the daily-lunch list.
func DeleteLunchSpecial(doc entity.SiteSettings, index int) (entity.SiteSettings, error) {
	if index < 0 || index >= len(doc.LunchSpecials) {
		return doc, errors.Wrapf(ErrIndexOutOfRange, "lunch special %d of %d", index, len(doc.LunchSpecials))
	}

	out := doc
	specials := copyLunchSpecials(doc.LunchSpecials)
	out.LunchSpecials = append(specials[:index], specials[index+1:]...)

	return out, nil
}

// SetCategoryName overwrites the Spanish name of the category at index and
// derives the English half through the fill policy.
func SetCategoryName(doc entity.SiteSettings, index int, nameEs string) (entity.SiteSettings, error) {
	if index < 0 || index >= len(doc.Categories) {
		return doc, errors.Wrapf(ErrIndexOutOfRange, "category %d of %d", index, len(doc.Categories))
	}

	out := doc
	categories := copyCategories(doc.Categories)
	categories[index].NameEs = nameEs
	categories[index].NameEn = Placeholder(nameEs)
	out.Categories = categories

	return out, nil
}

// SetItemField overwrites one scalar of the item at (catIndex, itemIndex).
// Spanish halves of bilingual pairs also overwrite their English half via
// the fill policy; all other fields are written verbatim.
func SetItemField(doc entity.SiteSettings, catIndex, itemIndex int, field ItemField, value string) (entity.SiteSettings, error) {
	if catIndex < 0 || catIndex >= len(doc.Categories) {
		return doc, errors.Wrapf(ErrIndexOutOfRange, "category %d of %d", catIndex, len(doc.Categories))
	}
	if itemIndex < 0 || itemIndex >= len(doc.Categories[catIndex].Items) {
		return doc, errors.Wrapf(ErrIndexOutOfRange, "item %d of %d", itemIndex, len(doc.Categories[catIndex].Items))
	}

	out := doc
	categories := copyCategories(doc.Categories)
	items := copyItems(categories[catIndex].Items)
	item := &items[itemIndex]

	switch field {
	case ItemNameEs:
		item.NameEs = value
		item.NameEn = Placeholder(value)
	case ItemNameEn:
		item.NameEn = value
	case ItemDescEs:
		item.DescEs = value
		item.DescEn = Placeholder(value)
	case ItemDescEn:
		item.DescEn = value
	case ItemPrice:
		item.Price = value
	case ItemImage:
		item.Image = value
	default:
		return doc, errors.Errorf("unknown item field %q", field)
	}

	categories[catIndex].Items = items
	out.Categories = categories

	return out, nil
}

// SetItemPopular flips the display-emphasis flag of one item.
func SetItemPopular(doc entity.SiteSettings, catIndex, itemIndex int, popular bool) (entity.SiteSettings, error) {
	if catIndex < 0 || catIndex >= len(doc.Categories) {
		return doc, errors.Wrapf(ErrIndexOutOfRange, "category %d of %d", catIndex, len(doc.Categories))
	}
	if itemIndex < 0 || itemIndex >= len(doc.Categories[catIndex].Items) {
		return doc, errors.Wrapf(ErrIndexOutOfRange, "item %d of %d", itemIndex, len(doc.Categories[catIndex].Items))
	}

	out := doc
	categories := copyCategories(doc.Categories)
	items := copyItems(categories[catIndex].Items)
	items[itemIndex].Popular = popular
	categories[catIndex].Items = items
	out.Categories = categories

	return out, nil
}

// ItemField names the editable scalar fields of a MenuItem.
type ItemField string

const (
	ItemNameEs ItemField = "nameEs"
	ItemNameEn ItemField = "nameEn"
	ItemDescEs ItemField = "descEs"
	ItemDescEn ItemField = "descEn"
	ItemPrice  ItemField = "price"
	ItemImage  ItemField = "image"
)

func copyCategories(in []entity.MenuCategory) []entity.MenuCategory {
	out := make([]entity.MenuCategory, len(in))
	copy(out, in)

	return out
}

func copyItems(in []entity.MenuItem) []entity.MenuItem {
	out := make([]entity.MenuItem, len(in))
	copy(out, in)

	return out
}

func copyLunchSpecials(in []entity.LunchSpecial) []entity.LunchSpecial {
	out := make([]entity.LunchSpecial, len(in))
	copy(out, in)

	return out
}
