// Package settings owns the SiteSettings document model: the hardcoded
// baseline, the shallow merge contract against partial persisted documents,
// the immutable edit operations used by the admin surfaces, and the
// bilingual auto-fill policy.
package settings

import "panaderia/internal/domain/entity"

// Defaults returns the complete baseline document. Every consumer that finds
// no (or a broken) persisted document renders this instead, so it must be
// fully populated and presentable on its own.
func Defaults() entity.SiteSettings {
	return entity.SiteSettings{
		HeroBadgeEs: "Horneado todos los días",
		HeroBadgeEn: "Baked fresh every day",
		HeroTitle:   "Panaderia La Francesa",
		HeroDescEs:  "Pan artesanal, pasteles y café desde 1998.",
		HeroDescEn:  "Artisan bread, pastries and coffee since 1998.",

		AboutDescEs:  "Somos una panadería familiar. Todo se hornea aquí, cada mañana.",
		AboutDescEn:  "We are a family bakery. Everything is baked here, every morning.",
		FooterDescEs: "Gracias por apoyar a un negocio local.",
		FooterDescEn: "Thank you for supporting a local business.",

		HoursWeekdaysEs: "Lunes a Viernes: 6:00 AM - 8:00 PM",
		HoursWeekdaysEn: "Monday to Friday: 6:00 AM - 8:00 PM",
		HoursSaturdayEs: "Sábado: 6:00 AM - 9:00 PM",
		HoursSaturdayEn: "Saturday: 6:00 AM - 9:00 PM",
		HoursSundayEs:   "Domingo: 7:00 AM - 3:00 PM",
		HoursSundayEn:   "Sunday: 7:00 AM - 3:00 PM",

		Address: "1204 Main St, El Paso, TX",
		Phone:   "(915) 555-0198",

		DirectionsTextEs: "CÓMO LLEGAR",
		DirectionsTextEn: "DIRECTIONS",
		OrderButtonEs:    "Ordenar ahora",
		OrderButtonEn:    "Order now",

		AvgPrice: "$2 - $8",

		ShowSpecialEvents:    false,
		SpecialEventsTitleEs: "Eventos especiales",
		SpecialEventsTitleEn: "Special events",
		SpecialEventsDescEs:  "Pasteles por encargo para toda ocasión.",
		SpecialEventsDescEn:  "Custom cakes for every occasion.",
		SpecialEventsImage:   "",

		PromoActive:   false,
		PromoMessage:  "",
		PromoDiscount: "",

		IsMenuVisible: true,

		Categories: []entity.MenuCategory{
			{
				ID:     "pan-dulce",
				NameEs: "Pan Dulce",
				NameEn: "Sweet Bread",
				Items: []entity.MenuItem{
					{
						ID:      "concha",
						NameEs:  "Concha",
						NameEn:  "Concha",
						Price:   "$1.25",
						DescEs:  "Clásica concha de vainilla o chocolate.",
						DescEn:  "Classic vanilla or chocolate concha.",
						Popular: true,
					},
					{
						ID:     "cuerno",
						NameEs: "Cuerno",
						NameEn: "Croissant",
						Price:  "$1.50",
						DescEs: "Hojaldrado y mantequilloso.",
						DescEn: "Flaky and buttery.",
					},
				},
			},
			{
				ID:     "pasteles",
				NameEs: "Pasteles",
				NameEn: "Cakes",
				Items: []entity.MenuItem{
					{
						ID:     "tres-leches",
						NameEs: "Tres Leches",
						NameEn: "Tres Leches",
						Price:  "$2.24 - $4.22",
						DescEs: "Por rebanada o pastel completo.",
						DescEn: "By the slice or whole cake.",
					},
				},
			},
		},

		LunchSpecials: []entity.LunchSpecial{
			{
				ID:     "lonche-pierna",
				NameEs: "Lonche de Pierna",
				NameEn: "Pork Leg Sandwich",
				Price:  "$6.50",
				DescEs: "En pan francés recién horneado.",
				DescEn: "On freshly baked French bread.",
			},
		},
	}
}
