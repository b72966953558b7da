package model

import "time"

// Content entities carry bilingual fields (Indonesian/English) where the
// public site renders both locales.

type Service struct {
	ID               string            `bson:"id" json:"id"`
	Slug             string            `bson:"slug" json:"slug"`
	NameID           string            `bson:"name_id" json:"name_id"`
	NameEN           string            `bson:"name_en" json:"name_en"`
	DescriptionID    string            `bson:"description_id" json:"description_id"`
	DescriptionEN    string            `bson:"description_en" json:"description_en"`
	Icon             string            `bson:"icon" json:"icon"`
	Features         []string          `bson:"features" json:"features"`
	PriceStart       int64             `bson:"price_start" json:"price_start"`
	Image            string            `bson:"image,omitempty" json:"image,omitempty"`
	Order            int               `bson:"order" json:"order"`
	TemplateCategory string            `bson:"template_category,omitempty" json:"template_category,omitempty"` // informal link to template category
	IncludedFeatures []IncludedFeature `bson:"included_features,omitempty" json:"included_features,omitempty"`
	CreatedAt        time.Time         `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt        time.Time         `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type IncludedFeature struct {
	TextID   string `bson:"text_id" json:"text_id"`
	TextEN   string `bson:"text_en" json:"text_en"`
	Included bool   `bson:"included" json:"included"`
}

type Template struct {
	ID            string    `bson:"id" json:"id"`
	Slug          string    `bson:"slug" json:"slug"`
	Name          string    `bson:"name" json:"name"`
	Category      string    `bson:"category" json:"category"`
	Price         int64     `bson:"price" json:"price"`
	SalePrice     *int64    `bson:"sale_price" json:"sale_price"`
	DescriptionID string    `bson:"description_id" json:"description_id"`
	DescriptionEN string    `bson:"description_en" json:"description_en"`
	Features      []string  `bson:"features" json:"features"`
	Technologies  []string  `bson:"technologies" json:"technologies"`
	DemoURL       string    `bson:"demo_url,omitempty" json:"demo_url,omitempty"`
	Image         string    `bson:"image" json:"image"`
	Images        []string  `bson:"images" json:"images"`
	Downloads     int       `bson:"downloads" json:"downloads"`
	Rating        float64   `bson:"rating" json:"rating"`
	IsFeatured    bool      `bson:"is_featured" json:"is_featured"`
	IsBestseller  bool      `bson:"is_bestseller" json:"is_bestseller"`
	IsNew         bool      `bson:"is_new" json:"is_new"`
	CreatedAt     time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt     time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type PortfolioItem struct {
	ID            string    `bson:"id" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Client        string    `bson:"client" json:"client"`
	Category      string    `bson:"category" json:"category"`
	DescriptionID string    `bson:"description_id" json:"description_id"`
	DescriptionEN string    `bson:"description_en" json:"description_en"`
	Image         string    `bson:"image" json:"image"`
	Images        []string  `bson:"images" json:"images"`
	URL           string    `bson:"url,omitempty" json:"url,omitempty"`
	Technologies  []string  `bson:"technologies" json:"technologies"`
	Year          int       `bson:"year" json:"year"`
	IsFeatured    bool      `bson:"is_featured" json:"is_featured"`
	CreatedAt     time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt     time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type BlogPost struct {
	ID          string    `bson:"id" json:"id"`
	Slug        string    `bson:"slug" json:"slug"`
	TitleID     string    `bson:"title_id" json:"title_id"`
	TitleEN     string    `bson:"title_en" json:"title_en"`
	ExcerptID   string    `bson:"excerpt_id" json:"excerpt_id"`
	ExcerptEN   string    `bson:"excerpt_en" json:"excerpt_en"`
	ContentID   string    `bson:"content_id" json:"content_id"`
	ContentEN   string    `bson:"content_en" json:"content_en"`
	Image       string    `bson:"image" json:"image"`
	Author      string    `bson:"author" json:"author"`
	Category    string    `bson:"category" json:"category"`
	Tags        []string  `bson:"tags" json:"tags"`
	ReadTime    int       `bson:"read_time" json:"read_time"`
	PublishedAt string    `bson:"published_at" json:"published_at"` // YYYY-MM-DD
	CreatedAt   time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt   time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

type Testimonial struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Role      string    `bson:"role" json:"role"`
	Company   string    `bson:"company" json:"company"`
	ContentID string    `bson:"content_id" json:"content_id"`
	ContentEN string    `bson:"content_en" json:"content_en"`
	Avatar    string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Rating    int       `bson:"rating" json:"rating"`
	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

type PricingPackage struct {
	ID            string           `bson:"id" json:"id"`
	NameID        string           `bson:"name_id" json:"name_id"`
	NameEN        string           `bson:"name_en" json:"name_en"`
	DescriptionID string           `bson:"description_id" json:"description_id"`
	DescriptionEN string           `bson:"description_en" json:"description_en"`
	Price         int64            `bson:"price" json:"price"`
	PriceNoteID   string           `bson:"price_note_id" json:"price_note_id"`
	PriceNoteEN   string           `bson:"price_note_en" json:"price_note_en"`
	Features      []PricingFeature `bson:"features" json:"features"`
	IsPopular     bool             `bson:"is_popular" json:"is_popular"`
	Order         int              `bson:"order" json:"order"`
	CreatedAt     time.Time        `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

type PricingFeature struct {
	TextID   string `bson:"text_id" json:"text_id"`
	TextEN   string `bson:"text_en" json:"text_en"`
	Included bool   `bson:"included" json:"included"`
}

type ContactMessage struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Service   string    `bson:"service,omitempty" json:"service,omitempty"`
	Message   string    `bson:"message" json:"message"`
	Status    string    `bson:"status" json:"status"` // new, read
	IsRead    bool      `bson:"is_read" json:"is_read"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
