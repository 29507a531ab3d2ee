package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/nexera/storefront/internal/domain/store"
)

type seedProduct struct {
	id       string
	name     string
	brand    string
	category string
	price    int64
	stock    int
	shipping int64
	imageURL string
}

// seedProducts is the built-in catalog, grouped by brand.
var seedProducts = []seedProduct{
	// Brand: Aoldi
	{"aoldi-1", "Moongry Odor Spray", "Aoldi", "Household", 129, 100, 20, "https://placehold.co/200x200/e2e8f0/1e293b?text=Aoldi"},

	// Brand: Api
	{"api-1", "MCT oil powder", "Api", "Supplement", 120, 100, 18, "https://placehold.co/200x200/fff1f2/be123c?text=MCT"},
	{"api-2", "Tomato extract powder", "Api", "Supplement", 325, 100, 20, "https://placehold.co/200x200/fff1f2/be123c?text=Tomato"},
	{"api-3", "Acai extract powder", "Api", "Supplement", 200, 100, 20, "https://placehold.co/200x200/fff1f2/be123c?text=Acai"},
	{"api-4", "Pomegranate extract powder", "Api", "Supplement", 250, 100, 20, "https://placehold.co/200x200/fff1f2/be123c?text=Pomegranate"},
	{"api-5", "Spirulina extract powder", "Api", "Supplement", 160, 100, 25, "https://placehold.co/200x200/fff1f2/be123c?text=Spirulina"},
	{"api-6", "Luo han guo extract powder", "Api", "Supplement", 250, 100, 20, "https://placehold.co/200x200/fff1f2/be123c?text=LuoHanGuo"},
	{"api-7", "Goji berry extract powder", "Api", "Supplement", 250, 100, 20, "https://placehold.co/200x200/fff1f2/be123c?text=Goji"},
	{"api-8", "Maqui berry extract powder", "Api", "Supplement", 180, 100, 20, "https://placehold.co/200x200/fff1f2/be123c?text=Maqui"},
	{"api-9", "Broccoli extract powder", "Api", "Supplement", 320, 100, 20, "https://placehold.co/200x200/fff1f2/be123c?text=Broccoli"},
	{"api-10", "Roselle extract powder", "Api", "Supplement", 320, 100, 20, "https://placehold.co/200x200/fff1f2/be123c?text=Roselle"},
	{"api-11", "Emblic extract powder", "Api", "Supplement", 325, 100, 25, "https://placehold.co/200x200/fff1f2/be123c?text=Emblic"},
	{"api-12", "Ginger extract powder", "Api", "Supplement", 250, 100, 25, "https://placehold.co/200x200/fff1f2/be123c?text=Ginger"},
	{"api-13", "Turmeric extract powder", "Api", "Supplement", 325, 100, 20, "https://placehold.co/200x200/fff1f2/be123c?text=Turmeric"},
	{"api-14", "Black galingale extract powder", "Api", "Supplement", 380, 100, 20, "https://placehold.co/200x200/fff1f2/be123c?text=BlackGalingale"},

	// Brand: Epcera
	{"epcera-1", "Collagen type II", "Epcera", "Supplement", 650, 100, 20, "https://placehold.co/200x200/f0f9ff/0369a1?text=Collagen"},
	{"epcera-2", "Anti Acne Gel", "Epcera", "Skincare", 169, 100, 10, "https://placehold.co/200x200/f0f9ff/0369a1?text=AcneGel"},
	{"epcera-3", "Scar Gel", "Epcera", "Skincare", 169, 100, 10, "https://placehold.co/200x200/f0f9ff/0369a1?text=ScarGel"},

	// Brand: Madam
	{"madam-1", "Nine herb green balm", "Madam", "Balm", 189, 100, 10, "https://placehold.co/200x200/f0fdf4/15803d?text=GreenBalm"},
	{"madam-2", "Massage oil no.7", "Madam", "Oil", 299, 100, 15, "https://placehold.co/200x200/f0fdf4/15803d?text=MassageOil"},

	// Brand: Muve
	{"muve-1", "Musz cream", "Muve", "Cream", 390, 100, 20, "https://placehold.co/200x200/faf5ff/7e22ce?text=MuszCream"},
	{"muve-2", "Spray", "Muve", "Spray", 390, 100, 20, "https://placehold.co/200x200/faf5ff/7e22ce?text=Spray"},
	{"muve-3", "Ativ Body Spray", "Muve", "Spray", 169, 100, 20, "https://placehold.co/200x200/faf5ff/7e22ce?text=BodySpray"},
	{"muve-4", "Ativ Sunscreen SPF50+ PA++++", "Muve", "Skincare", 769, 100, 15, "https://placehold.co/200x200/faf5ff/7e22ce?text=Sunscreen"},
	{"muve-5", "Ativ Hair Wash", "Muve", "Haircare", 219, 100, 20, "https://placehold.co/200x200/faf5ff/7e22ce?text=HairWash"},
	{"muve-6", "Ativ Body Wash", "Muve", "Bodycare", 199, 100, 20, "https://placehold.co/200x200/faf5ff/7e22ce?text=BodyWash"},
	{"muve-7", "Creatinex", "Muve", "Supplement", 550, 100, 15, "https://placehold.co/200x200/faf5ff/7e22ce?text=Creatinex"},
	{"muve-8", "Pformax", "Muve", "Supplement", 550, 100, 15, "https://placehold.co/200x200/faf5ff/7e22ce?text=Pformax"},
	{"muve-9", "Curlagen T2", "Muve", "Supplement", 590, 100, 15, "https://placehold.co/200x200/faf5ff/7e22ce?text=Curlagen"},
	{"muve-10", "BONEX", "Muve", "Supplement", 590, 100, 15, "https://placehold.co/200x200/faf5ff/7e22ce?text=BONEX"},
	{"muve-11", "Ultimate Protein+", "Muve", "Supplement", 1490, 100, 40, "https://placehold.co/200x200/faf5ff/7e22ce?text=Protein+"},
	{"muve-12", "Enagel", "Muve", "Energy", 90, 100, 15, "https://placehold.co/200x200/faf5ff/7e22ce?text=Enagel"},

	// Brand: Profitt
	{"profitt-1", "C-DEF (Cancer defense)", "Profitt", "Supplement", 690, 100, 15, "https://placehold.co/200x200/fff7ed/c2410c?text=C-DEF"},
	{"profitt-2", "Car-D (Cardio flow)", "Profitt", "Supplement", 590, 100, 15, "https://placehold.co/200x200/fff7ed/c2410c?text=Car-D"},
	{"profitt-3", "Nuxe (Neuroshield)", "Profitt", "Supplement", 650, 100, 15, "https://placehold.co/200x200/fff7ed/c2410c?text=Nuxe"},
	{"profitt-4", "Gluco B (Gluco balance)", "Profitt", "Supplement", 590, 100, 15, "https://placehold.co/200x200/fff7ed/c2410c?text=GlucoB"},
	{"profitt-5", "Prezz G (Pressure Guard)", "Profitt", "Supplement", 619, 100, 15, "https://placehold.co/200x200/fff7ed/c2410c?text=PrezzG"},
	{"profitt-6", "Renex (Renal care)", "Profitt", "Supplement", 590, 100, 15, "https://placehold.co/200x200/fff7ed/c2410c?text=Renex"},
	{"profitt-7", "Livoxa (Hepa defense)", "Profitt", "Supplement", 650, 100, 15, "https://placehold.co/200x200/fff7ed/c2410c?text=Livoxa"},
	{"profitt-8", "Lugivist (Lung vital)", "Profitt", "Supplement", 590, 100, 15, "https://placehold.co/200x200/fff7ed/c2410c?text=Lugivist"},
	{"profitt-9", "Bacovia (Neuropro)", "Profitt", "Supplement", 590, 100, 15, "https://placehold.co/200x200/fff7ed/c2410c?text=Bacovia"},
	{"profitt-10", "Camorex (Mind care)", "Profitt", "Supplement", 590, 100, 15, "https://placehold.co/200x200/fff7ed/c2410c?text=Camorex"},

	// Brand: Genbio
	{"genbio-1", "Synbac 9", "Genbio", "Supplement", 690, 100, 20, "https://placehold.co/200x200/eff6ff/1d4ed8?text=Synbac9"},
}

// DefaultProducts returns the built-in catalog in display order.
func DefaultProducts() []store.Product {
	products := make([]store.Product, len(seedProducts))
	for i, s := range seedProducts {
		products[i] = store.Product{
			ID:           s.id,
			Name:         s.name,
			Brand:        s.brand,
			Category:     s.category,
			Price:        decimal.NewFromInt(s.price),
			Stock:        s.stock,
			ShippingCost: decimal.NewFromInt(s.shipping),
			ImageURL:     s.imageURL,
		}
	}
	return products
}
