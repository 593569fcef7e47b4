// Package catalog holds the boiler products sold through the shop. The
// catalog is static for now; carts and orders always price items from here
// rather than trusting client-sent figures.
package catalog

import (
	"github.com/Guidoll2/fontaneriabarcelona/internal/cart"
	"github.com/Guidoll2/fontaneriabarcelona/internal/i18n"
)

type Product struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	Price                float64 `json:"price"`
	Image                string  `json:"image"`
	Description          string  `json:"description"`
	InstallationIncluded bool    `json:"installationIncluded"`
}

var products = []Product{
	{
		ID:                   "1",
		Name:                 "Caldera de Condensación 24kW",
		Price:                1200,
		Image:                "/caldera-optimized.jpg",
		Description:          "Caldera de gas de condensación de alta eficiencia. Perfecta para viviendas de hasta 150m². Bajo consumo y mínimas emisiones.",
		InstallationIncluded: true,
	},
	{
		ID:                   "2",
		Name:                 "Caldera de Condensación 30kW",
		Price:                1450,
		Image:                "/caldera-optimized.jpg",
		Description:          "Ideal para espacios más grandes. Sistema de modulación inteligente que optimiza el consumo energético.",
		InstallationIncluded: true,
	},
	{
		ID:                   "3",
		Name:                 "Caldera Mixta 24kW",
		Price:                1350,
		Image:                "/caldera-optimized.jpg",
		Description:          "Calefacción y agua caliente sanitaria instantánea. Diseño compacto perfecto para cualquier espacio.",
		InstallationIncluded: true,
	},
	{
		ID:                   "4",
		Name:                 "Caldera de Bajo NOx 28kW",
		Price:                1550,
		Image:                "/caldera-optimized.jpg",
		Description:          "Tecnología de bajas emisiones. Certificación energética A. Control remoto vía WiFi incluido.",
		InstallationIncluded: true,
	},
	{
		ID:                   "5",
		Name:                 "Caldera Estanca 20kW",
		Price:                1100,
		Image:                "/caldera-optimized.jpg",
		Description:          "Seguridad garantizada con cámara estanca. Ideal para apartamentos y espacios reducidos.",
		InstallationIncluded: true,
	},
	{
		ID:                   "6",
		Name:                 "Caldera Premium 35kW",
		Price:                1800,
		Image:                "/caldera-optimized.jpg",
		Description:          "Modelo Premium con pantalla táctil LCD. Control inteligente de temperatura y conectividad Smart Home.",
		InstallationIncluded: true,
	},
}

type productText struct {
	Name        string
	Description string
}

// The Spanish catalog above is the source of truth; these override name and
// description for the other site locales.
var translations = map[i18n.Locale]map[string]productText{
	i18n.LocaleEN: {
		"1": {
			Name:        "Condensing Boiler 24kW",
			Description: "High-efficiency condensing gas boiler. Perfect for homes up to 150m². Low consumption and minimal emissions.",
		},
		"2": {
			Name:        "Condensing Boiler 30kW",
			Description: "Ideal for larger spaces. Smart modulation system that optimizes energy consumption.",
		},
		"3": {
			Name:        "Combi Boiler 24kW",
			Description: "Heating and instant domestic hot water. Compact design that fits any space.",
		},
		"4": {
			Name:        "Low NOx Boiler 28kW",
			Description: "Low-emission technology. Energy rating A. WiFi remote control included.",
		},
		"5": {
			Name:        "Sealed Boiler 20kW",
			Description: "Guaranteed safety with a sealed chamber. Ideal for apartments and small spaces.",
		},
		"6": {
			Name:        "Premium Boiler 35kW",
			Description: "Premium model with LCD touch screen. Smart temperature control and Smart Home connectivity.",
		},
	},
	i18n.LocaleCA: {
		"1": {
			Name:        "Caldera de Condensació 24kW",
			Description: "Caldera de gas de condensació d'alta eficiència. Perfecta per a habitatges de fins a 150m². Baix consum i mínimes emissions.",
		},
		"2": {
			Name:        "Caldera de Condensació 30kW",
			Description: "Ideal per a espais més grans. Sistema de modulació intel·ligent que optimitza el consum energètic.",
		},
		"3": {
			Name:        "Caldera Mixta 24kW",
			Description: "Calefacció i aigua calenta sanitària instantània. Disseny compacte perfecte per a qualsevol espai.",
		},
		"4": {
			Name:        "Caldera de Baix NOx 28kW",
			Description: "Tecnologia de baixes emissions. Certificació energètica A. Control remot via WiFi inclòs.",
		},
		"5": {
			Name:        "Caldera Estanca 20kW",
			Description: "Seguretat garantida amb cambra estanca. Ideal per a apartaments i espais reduïts.",
		},
		"6": {
			Name:        "Caldera Premium 35kW",
			Description: "Model Premium amb pantalla tàctil LCD. Control intel·ligent de temperatura i connectivitat Smart Home.",
		},
	},
}

// List returns the catalog with names and descriptions in the given locale.
// Locales without a translation table get the Spanish texts.
func List(locale i18n.Locale) []Product {
	out := make([]Product, len(products))
	copy(out, products)
	overrides, ok := translations[locale]
	if !ok {
		return out
	}
	for i := range out {
		if text, ok := overrides[out[i].ID]; ok {
			out[i].Name = text.Name
			out[i].Description = text.Description
		}
	}
	return out
}

func Find(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Source adapts the catalog to the cart handler's product lookup.
type Source struct{}

func (Source) CartItem(id string) (cart.Item, bool) {
	p, ok := Find(id)
	if !ok {
		return cart.Item{}, false
	}
	return cart.Item{
		ID:                   p.ID,
		Name:                 p.Name,
		Description:          p.Description,
		Image:                p.Image,
		Price:                p.Price,
		InstallationIncluded: p.InstallationIncluded,
	}, true
}
