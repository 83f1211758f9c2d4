package domain

type Category string

const (
	CategoryPosters   Category = "posters"
	CategoryPolaroids Category = "polaroids"
	CategoryTShirts   Category = "tshirts"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryPosters, CategoryPolaroids, CategoryTShirts:
		return true
	}
	return false
}

type Review struct {
	ID      string `yaml:"id" json:"id"`
	User    string `yaml:"user" json:"user"`
	Rating  int    `yaml:"rating" json:"rating"`
	Comment string `yaml:"comment" json:"comment"`
	Date    string `yaml:"date" json:"date"`
}

// Product prices are whole rupees.
type Product struct {
	ID            string   `yaml:"id" json:"id"`
	Name          string   `yaml:"name" json:"name"`
	Price         int64    `yaml:"price" json:"price"`
	OriginalPrice int64    `yaml:"originalPrice" json:"originalPrice"`
	Image         string   `yaml:"image" json:"image"`
	Category      Category `yaml:"category" json:"category"`
	Description   string   `yaml:"description" json:"description"`
	Rating        float64  `yaml:"rating" json:"rating"`
	Reviews       []Review `yaml:"reviews" json:"reviews"`
	IsNew         bool     `yaml:"isNew" json:"isNew,omitempty"`
	IsBestseller  bool     `yaml:"isBestseller" json:"isBestseller,omitempty"`
	InStock       bool     `yaml:"inStock" json:"inStock"`
	Sizes         []string `yaml:"sizes" json:"sizes,omitempty"`
	Colors        []string `yaml:"colors" json:"colors,omitempty"`
}

// Clone returns a deep copy so catalog data cannot be mutated through it.
func (p Product) Clone() Product {
	out := p
	out.Reviews = append([]Review(nil), p.Reviews...)
	out.Sizes = append([]string(nil), p.Sizes...)
	out.Colors = append([]string(nil), p.Colors...)
	return out
}

func (p Product) OffersSize(size string) bool {
	return offers(p.Sizes, size)
}

func (p Product) OffersColor(color string) bool {
	return offers(p.Colors, color)
}

// offers reports whether v is an allowed option. An empty choice is always
// allowed; a non-empty one must be listed.
func offers(options []string, v string) bool {
	if v == "" {
		return true
	}
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
