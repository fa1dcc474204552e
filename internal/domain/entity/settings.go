// Package entity contains the core business objects of the project.
package entity

// MenuItem is a single sellable product inside a category.
//
// IDs are opaque string tokens, unique within the enclosing category, minted
// once at creation and never reassigned. Price is a display string on
// purpose: the storefront shows values like "$2.24 - $4.22" verbatim.
type MenuItem struct {
	ID      string `json:"id"`
	NameEs  string `json:"nameEs"`
	NameEn  string `json:"nameEn"`
	Price   string `json:"price"`
	DescEs  string `json:"descEs"`
	DescEn  string `json:"descEn"`
	Image   string `json:"image"`   // empty string means "no image"
	Popular bool   `json:"popular"` // display emphasis only
}

// MenuCategory groups items into one storefront tab. Item order is display
// order and is meaningful.
type MenuCategory struct {
	ID     string     `json:"id"`
	NameEs string     `json:"nameEs"`
	NameEn string     `json:"nameEn"`
	Items  []MenuItem `json:"items"`
}

// LunchSpecial is the reduced item shape used by the rotating daily-lunch
// feature. It is independent of the category catalog.
type LunchSpecial struct {
	ID     string `json:"id"`
	NameEs string `json:"nameEs"`
	NameEn string `json:"nameEn"`
	Price  string `json:"price"`
	DescEs string `json:"descEs"`
	DescEn string `json:"descEn"`
}

// SiteSettings is the single persisted configuration document for the
// storefront and the admin console.
//
// The document lives in exactly one database row as a JSON blob. Bilingual
// field pairs (xxxEs/xxxEn) are independently settable; nothing enforces
// that the EN half is a real translation. Toggle fields gate rendering only:
// turning promoActive or showSpecialEvents off must never clear the
// dependent fields, so an accidental toggle loses no data.
type SiteSettings struct {
	HeroBadgeEs string `json:"heroBadgeEs"`
	HeroBadgeEn string `json:"heroBadgeEn"`
	HeroTitle   string `json:"heroTitle"`
	HeroDescEs  string `json:"heroDescEs"`
	HeroDescEn  string `json:"heroDescEn"`

	AboutDescEs  string `json:"aboutDescEs"`
	AboutDescEn  string `json:"aboutDescEn"`
	FooterDescEs string `json:"footerDescEs"`
	FooterDescEn string `json:"footerDescEn"`

	HoursWeekdaysEs string `json:"hoursWeekdaysEs"`
	HoursWeekdaysEn string `json:"hoursWeekdaysEn"`
	HoursSaturdayEs string `json:"hoursSaturdayEs"`
	HoursSaturdayEn string `json:"hoursSaturdayEn"`
	HoursSundayEs   string `json:"hoursSundayEs"`
	HoursSundayEn   string `json:"hoursSundayEn"`

	Address string `json:"address"`
	Phone   string `json:"phone"`

	DirectionsTextEs string `json:"directionsTextEs"`
	DirectionsTextEn string `json:"directionsTextEn"`
	OrderButtonEs    string `json:"orderButtonEs"`
	OrderButtonEn    string `json:"orderButtonEn"`

	AvgPrice string `json:"avgPrice"`

	ShowSpecialEvents    bool   `json:"showSpecialEvents"`
	SpecialEventsTitleEs string `json:"specialEventsTitleEs"`
	SpecialEventsTitleEn string `json:"specialEventsTitleEn"`
	SpecialEventsDescEs  string `json:"specialEventsDescEs"`
	SpecialEventsDescEn  string `json:"specialEventsDescEn"`
	SpecialEventsImage   string `json:"specialEventsImage"`

	PromoActive   bool   `json:"promoActive"`
	PromoMessage  string `json:"promoMessage"`
	PromoDiscount string `json:"promoDiscount"`

	IsMenuVisible bool `json:"isMenuVisible"`

	Categories    []MenuCategory `json:"categories"`
	LunchSpecials []LunchSpecial `json:"lunchSpecials"`
}
