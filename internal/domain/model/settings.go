package model

// SiteSettings is a singleton document edited from the admin panel.
type SiteSettings struct {
	SiteName        string `bson:"site_name" json:"site_name"`
	TaglineID       string `bson:"tagline_id" json:"tagline_id"`
	TaglineEN       string `bson:"tagline_en" json:"tagline_en"`
	DescriptionID   string `bson:"description_id" json:"description_id"`
	DescriptionEN   string `bson:"description_en" json:"description_en"`
	LogoURL         string `bson:"logo_url" json:"logo_url"`
	FaviconURL      string `bson:"favicon_url" json:"favicon_url"`
	MetaTitle       string `bson:"meta_title" json:"meta_title"`
	MetaDescription string `bson:"meta_description" json:"meta_description"`
	MetaKeywords    string `bson:"meta_keywords" json:"meta_keywords"`
	OGImage         string `bson:"og_image" json:"og_image"`
	ContactEmail    string `bson:"contact_email" json:"contact_email"`
	ContactPhone    string `bson:"contact_phone" json:"contact_phone"`
	ContactWhatsapp string `bson:"contact_whatsapp" json:"contact_whatsapp"`
	Address         string `bson:"address" json:"address"`
	SocialFacebook  string `bson:"social_facebook" json:"social_facebook"`
	SocialInstagram string `bson:"social_instagram" json:"social_instagram"`
	SocialTwitter   string `bson:"social_twitter" json:"social_twitter"`
	SocialLinkedin  string `bson:"social_linkedin" json:"social_linkedin"`
	SocialYoutube   string `bson:"social_youtube" json:"social_youtube"`
}

func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteName:        "Calius Digital",
		TaglineID:       "Wujudkan Website Impian Bisnis Anda",
		TaglineEN:       "Build Your Dream Business Website",
		DescriptionID:   "Kami membantu bisnis Anda tampil profesional di dunia digital dengan website berkualitas tinggi dan template premium.",
		DescriptionEN:   "We help your business look professional in the digital world with high-quality websites and premium templates.",
		MetaTitle:       "Calius Digital - Web Agency Profesional",
		MetaDescription: "Jasa pembuatan website profesional dan template premium untuk bisnis Anda.",
		MetaKeywords:    "website, template, web development, digital agency",
	}
}
