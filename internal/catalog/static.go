package catalog

import (
	"strings"

	"github.com/lib/pq"

	"github.com/example/quim/internal/models"
)

// StaticProvider serves a fixed menu loaded once per session.
type StaticProvider struct {
	products []models.Product
	bySlug   map[string]*models.Product
}

// NewStaticProvider builds a provider over the given products.
func NewStaticProvider(products []models.Product) *StaticProvider {
	p := &StaticProvider{
		products: products,
		bySlug:   make(map[string]*models.Product, len(products)),
	}
	for i := range p.products {
		p.bySlug[p.products[i].Slug] = &p.products[i]
	}
	return p
}

// NewDefaultProvider serves the restaurant's standard menu.
func NewDefaultProvider() *StaticProvider {
	return NewStaticProvider(DefaultMenu())
}

func (p *StaticProvider) List() []models.Product {
	out := make([]models.Product, len(p.products))
	copy(out, p.products)
	return out
}

func (p *StaticProvider) ListByCategory(category string) []models.Product {
	if category == "" {
		return p.List()
	}
	var out []models.Product
	for _, prod := range p.products {
		if strings.EqualFold(prod.Category, category) {
			out = append(out, prod)
		}
	}
	return out
}

func (p *StaticProvider) Search(query string) []models.Product {
	term := strings.ToLower(strings.TrimSpace(query))
	var out []models.Product
	for i := range p.products {
		if matchesQuery(&p.products[i], term) {
			out = append(out, p.products[i])
		}
	}
	return out
}

func (p *StaticProvider) GetBySlug(slug string) (*models.Product, bool) {
	prod, ok := p.bySlug[slug]
	return prod, ok
}

// Categories returns the menu sections in display order.
func (p *StaticProvider) Categories() []string {
	return []string{"Entradas", "Principais", "Massas & Risotos", "Sobremesas", "Bebidas"}
}

func promo(v int64) *int64 { return &v }

// DefaultMenu is the seed catalog. All prices are centavos.
func DefaultMenu() []models.Product {
	return []models.Product{
		{
			Slug:              "rigatoni-ragu-cupim",
			Name:              "Rigatoni ao Ragu de Cupim",
			Category:          "Principais",
			ShortDescription:  "Massa artesanal com ragu cozido por 12h.",
			LongDescription:   "Massa fresca preparada na casa, servida com ragu de cupim cozido lentamente por 12 horas, finalizado com demiglace da casa e grana padano envelhecido.",
			BasePrice:         6900,
			Badges:            pq.StringArray{"Chef"},
			Allergens:         pq.StringArray{"glúten", "lácteos"},
			Image:             "/imgs/rigatoni-ragu.jpg",
			DeliveryAvailable: true,
			ModifierGroups: []models.ModifierGroup{
				{
					Name:     "Porção",
					Mode:     models.ModeSingle,
					Required: true,
					Options: []models.ModifierOption{
						{Label: "Individual", PriceDelta: 0},
						{Label: "Para 2", PriceDelta: 3500},
					},
				},
			},
		},
		{
			Slug:              "salmao-grelhado-quinoa",
			Name:              "Salmão Grelhado com Quinoa",
			Category:          "Principais",
			ShortDescription:  "Salmão fresco grelhado na brasa com quinoa tricolor.",
			LongDescription:   "Filé de salmão fresco grelhado na brasa, servido sobre quinoa tricolor com legumes da estação e molho de ervas finas.",
			BasePrice:         7800,
			Badges:            pq.StringArray{"Sem glúten"},
			Allergens:         pq.StringArray{"peixe"},
			Image:             "/imgs/salmao-quinoa.jpg",
			DeliveryAvailable: true,
		},
		{
			Slug:              "risotto-cogumelos-trufa",
			Name:              "Risotto de Cogumelos com Trufa",
			Category:          "Massas & Risotos",
			ShortDescription:  "Risotto cremoso com mix de cogumelos e óleo de trufa.",
			LongDescription:   "Arroz arbóreo cozido no ponto perfeito com mix de cogumelos frescos, finalizado com óleo de trufa negra e parmesão 24 meses.",
			BasePrice:         6500,
			PromoPrice:        promo(5800),
			Badges:            pq.StringArray{"Vegetariano", "Chef"},
			Allergens:         pq.StringArray{"lácteos"},
			Image:             "/imgs/risotto-trufa.jpg",
			DeliveryAvailable: true,
			ModifierGroups: []models.ModifierGroup{
				{
					Name: "Extras",
					Mode: models.ModeMulti,
					Options: []models.ModifierOption{
						{Label: "Cogumelos extras", PriceDelta: 1200},
						{Label: "Trufa fresca", PriceDelta: 2500},
					},
				},
			},
		},
		{
			Slug:              "salada-burrata-tomate",
			Name:              "Salada de Burrata com Tomate Confit",
			Category:          "Entradas",
			ShortDescription:  "Burrata cremosa com tomates confitados e rúcula.",
			LongDescription:   "Burrata italiana cremosa servida com tomates cerejas confitados, rúcula selvagem, pesto de manjericão e redução balsâmica.",
			BasePrice:         4200,
			Badges:            pq.StringArray{"Vegetariano", "Novo"},
			Allergens:         pq.StringArray{"lácteos"},
			Image:             "/imgs/burrata.jpg",
			DeliveryAvailable: true,
		},
		{
			Slug:              "polvo-grelhado-batata",
			Name:              "Polvo Grelhado com Batata Confitada",
			Category:          "Principais",
			ShortDescription:  "Polvo macio grelhado com batatas confitadas no azeite.",
			LongDescription:   "Tentáculos de polvo cozidos até a maciez perfeita, grelhados na brasa e servidos com batatas confitadas no azeite de ervas.",
			BasePrice:         8500,
			Badges:            pq.StringArray{"Chef", "Sem glúten"},
			Allergens:         pq.StringArray{"frutos do mar"},
			Image:             "/imgs/polvo.jpg",
			DeliveryAvailable: false,
		},
		{
			Slug:              "gnocchi-ragu-cordeiro",
			Name:              "Gnocchi ao Ragu de Cordeiro",
			Category:          "Massas & Risotos",
			ShortDescription:  "Gnocchi artesanal com ragu de cordeiro e tomilho.",
			LongDescription:   "Gnocchi de batata feito na casa, servido com ragu de cordeiro cozido lentamente com tomilho fresco e vinho tinto.",
			BasePrice:         7200,
			Badges:            pq.StringArray{"Chef"},
			Allergens:         pq.StringArray{"glúten", "lácteos", "ovos"},
			Image:             "/imgs/gnocchi.jpg",
			DeliveryAvailable: true,
		},
		{
			Slug:              "tartare-atum-abacate",
			Name:              "Tartare de Atum com Abacate",
			Category:          "Entradas",
			ShortDescription:  "Atum fresco em cubos com abacate e molho ponzu.",
			LongDescription:   "Cubos de atum fresco temperados com gengibre, servidos com abacate cremoso, molho ponzu e chips de batata doce.",
			BasePrice:         4800,
			Badges:            pq.StringArray{"Sem glúten", "Novo"},
			Allergens:         pq.StringArray{"peixe"},
			Image:             "/imgs/tartare.jpg",
			DeliveryAvailable: false,
		},
		{
			Slug:              "brownie-sorvete-baunilha",
			Name:              "Brownie com Sorvete de Baunilha",
			Category:          "Sobremesas",
			ShortDescription:  "Brownie quentinho com sorvete artesanal e calda.",
			LongDescription:   "Brownie de chocolate belga servido quente, acompanhado de sorvete artesanal de baunilha e calda de chocolate amargo.",
			BasePrice:         2800,
			Badges:            pq.StringArray{"Vegetariano"},
			Allergens:         pq.StringArray{"glúten", "lácteos", "ovos", "nozes"},
			Image:             "/imgs/brownie.jpg",
			DeliveryAvailable: true,
		},
		{
			Slug:              "vinho-tinto-reserva",
			Name:              "Vinho Tinto Reserva",
			Category:          "Bebidas",
			ShortDescription:  "Vinho tinto encorpado da nossa seleção especial.",
			LongDescription:   "Vinho tinto encorpado da nossa seleção especial, perfeito para harmonizar com carnes vermelhas.",
			BasePrice:         12000,
			Allergens:         pq.StringArray{"sulfitos"},
			Image:             "/imgs/vinho-reserva.jpg",
			DeliveryAvailable: true,
			ModifierGroups: []models.ModifierGroup{
				{
					Name:     "Tamanho",
					Mode:     models.ModeSingle,
					Required: true,
					Options: []models.ModifierOption{
						{Label: "Taça (150ml)", PriceDelta: -9000},
						{Label: "Garrafa (750ml)", PriceDelta: 0},
					},
				},
			},
		},
		{
			Slug:              "mousse-chocolate-frutas",
			Name:              "Mousse de Chocolate com Frutas Vermelhas",
			Category:          "Sobremesas",
			ShortDescription:  "Mousse cremoso de chocolate 70% com frutas da estação.",
			LongDescription:   "Mousse aerado de chocolate 70% cacau, servido com mix de frutas vermelhas da estação e crumble de amêndoas.",
			BasePrice:         3200,
			Badges:            pq.StringArray{"Vegetariano"},
			Allergens:         pq.StringArray{"lácteos", "ovos", "nozes"},
			Image:             "/imgs/mousse.jpg",
			DeliveryAvailable: true,
		},
		{
			Slug:              "hamburguer-angus-artesanal",
			Name:              "Hambúrguer Angus Artesanal",
			Category:          "Principais",
			ShortDescription:  "Hambúrguer de angus 180g com queijo gruyère e bacon.",
			LongDescription:   "Hambúrguer artesanal de carne angus 180g, queijo gruyère derretido, bacon crocante, alface orgânica e tomate, servido em pão brioche com batatas rústicas.",
			BasePrice:         5200,
			Allergens:         pq.StringArray{"glúten", "lácteos", "ovos"},
			Image:             "/imgs/hamburguer.jpg",
			DeliveryAvailable: true,
			ModifierGroups: []models.ModifierGroup{
				{
					Name:     "Ponto da Carne",
					Mode:     models.ModeSingle,
					Required: true,
					Options: []models.ModifierOption{
						{Label: "Mal passada", PriceDelta: 0},
						{Label: "Ao ponto", PriceDelta: 0},
						{Label: "Bem passada", PriceDelta: 0},
					},
				},
				{
					Name: "Extras",
					Mode: models.ModeMulti,
					Options: []models.ModifierOption{
						{Label: "Bacon extra", PriceDelta: 800},
						{Label: "Cebola caramelizada", PriceDelta: 500},
						{Label: "Cogumelos salteados", PriceDelta: 1000},
					},
				},
			},
		},
		{
			Slug:              "bowl-acai-granola",
			Name:              "Bowl de Açaí com Granola",
			Category:          "Sobremesas",
			ShortDescription:  "Açaí cremoso com granola artesanal e frutas frescas.",
			LongDescription:   "Bowl de açaí cremoso coberto com granola artesanal, banana, morango, mirtilos e mel orgânico.",
			BasePrice:         2400,
			Badges:            pq.StringArray{"Vegano", "Sem glúten"},
			Allergens:         pq.StringArray{"nozes"},
			Image:             "/imgs/bowl-acai.jpg",
			DeliveryAvailable: true,
		},
	}
}
