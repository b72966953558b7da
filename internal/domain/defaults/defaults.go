// Package defaults holds the static fallback content returned while a
// collection is still empty, so the public site is never blank before an
// admin has populated anything.
package defaults

import "github.com/kebo-sukses/calius-digital/internal/domain/model"

func int64Ptr(v int64) *int64 { return &v }

func Services() []model.Service {
	return []model.Service{
		{
			ID: "1", Slug: "company-profile",
			NameID:        "Website Company Profile",
			NameEN:        "Company Profile Website",
			DescriptionID: "Website profesional untuk menampilkan profil perusahaan, layanan, dan portofolio bisnis Anda.",
			DescriptionEN: "Professional website to showcase your company profile, services, and business portfolio.",
			Icon:          "Building2",
			Features:      []string{"Responsive Design", "SEO Optimized", "Contact Form", "Google Maps", "Social Media Integration"},
			PriceStart:    3500000, Order: 1,
		},
		{
			ID: "2", Slug: "e-commerce",
			NameID:        "Website E-Commerce",
			NameEN:        "E-Commerce Website",
			DescriptionID: "Toko online lengkap dengan keranjang belanja, payment gateway, dan manajemen produk.",
			DescriptionEN: "Complete online store with shopping cart, payment gateway, and product management.",
			Icon:          "ShoppingCart",
			Features:      []string{"Product Catalog", "Shopping Cart", "Payment Gateway", "Order Management", "Inventory System"},
			PriceStart:    8500000, Order: 2,
		},
		{
			ID: "3", Slug: "landing-page",
			NameID:        "Landing Page",
			NameEN:        "Landing Page",
			DescriptionID: "Halaman landing yang dioptimalkan untuk konversi tinggi dan kampanye marketing.",
			DescriptionEN: "High-converting landing page optimized for marketing campaigns.",
			Icon:          "Rocket",
			Features:      []string{"High Conversion Design", "A/B Testing Ready", "Lead Capture Form", "Analytics Integration", "Fast Loading"},
			PriceStart:    2500000, Order: 3,
		},
		{
			ID: "4", Slug: "custom-web-app",
			NameID:        "Custom Web Application",
			NameEN:        "Custom Web Application",
			DescriptionID: "Aplikasi web custom sesuai kebutuhan bisnis Anda dengan fitur-fitur khusus.",
			DescriptionEN: "Custom web application tailored to your business needs with special features.",
			Icon:          "Code2",
			Features:      []string{"Custom Features", "API Integration", "Admin Dashboard", "User Management", "Scalable Architecture"},
			PriceStart:    15000000, Order: 4,
		},
	}
}

func Templates() []model.Template {
	return []model.Template{
		{
			ID: "1", Slug: "corporate-pro", Name: "Corporate Pro Business", Category: "business",
			Price:         750000,
			DescriptionID: "Template bisnis korporat profesional dengan desain modern.",
			DescriptionEN: "Professional corporate business template with modern design.",
			Features:      []string{"Responsive Design", "SEO Optimized", "Contact Form", "12 Pages"},
			Technologies:  []string{"HTML5", "CSS3", "JavaScript", "Bootstrap 5"},
			DemoURL:       "https://demo.calius.digital/corporate-pro",
			Image:         "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800",
			Images:        []string{},
			Downloads:     150, Rating: 4.9, IsFeatured: true, IsNew: true,
		},
		{
			ID: "2", Slug: "shopmax-ecommerce", Name: "ShopMax E-Commerce", Category: "ecommerce",
			Price: 1200000, SalePrice: int64Ptr(950000),
			DescriptionID: "Solusi e-commerce lengkap dengan keranjang belanja dan checkout.",
			DescriptionEN: "Complete e-commerce solution with shopping cart and checkout.",
			Features:      []string{"Product Catalog", "Shopping Cart", "Checkout System", "18 Pages"},
			Technologies:  []string{"HTML5", "CSS3", "JavaScript", "Vue.js"},
			DemoURL:       "https://demo.calius.digital/shopmax",
			Image:         "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=800",
			Images:        []string{},
			Downloads:     280, Rating: 4.8, IsFeatured: true, IsBestseller: true,
		},
		{
			ID: "3", Slug: "creative-portfolio", Name: "Creative Portfolio Pro", Category: "portfolio",
			Price:         600000,
			DescriptionID: "Template portfolio kreatif untuk desainer dan fotografer.",
			DescriptionEN: "Creative portfolio template for designers and photographers.",
			Features:      []string{"Gallery Layouts", "Project Showcase", "Smooth Animations", "8 Pages"},
			Technologies:  []string{"HTML5", "CSS3", "JavaScript", "GSAP"},
			DemoURL:       "https://demo.calius.digital/portfolio",
			Image:         "https://images.unsplash.com/photo-1507238691740-187a5b1d37b8?w=800",
			Images:        []string{},
			Downloads:     95, Rating: 5.0, IsFeatured: true, IsNew: true,
		},
		{
			ID: "4", Slug: "launchpad-landing", Name: "LaunchPad Landing Page", Category: "landing-page",
			Price: 450000, SalePrice: int64Ptr(350000),
			DescriptionID: "Landing page konversi tinggi untuk peluncuran produk.",
			DescriptionEN: "High-converting landing page for product launches.",
			Features:      []string{"Lead Capture", "Countdown Timer", "Pricing Tables", "1 Page"},
			Technologies:  []string{"HTML5", "CSS3", "JavaScript", "Tailwind CSS"},
			DemoURL:       "https://demo.calius.digital/launchpad",
			Image:         "https://images.unsplash.com/photo-1551288049-bebda4e38f71?w=800",
			Images:        []string{},
			Downloads:     320, Rating: 4.7, IsBestseller: true,
		},
		{
			ID: "5", Slug: "delicious-restaurant", Name: "Delicious Restaurant", Category: "restaurant",
			Price:         700000,
			DescriptionID: "Template restoran dengan menu online dan sistem reservasi.",
			DescriptionEN: "Restaurant template with online menu and reservation system.",
			Features:      []string{"Menu System", "Reservation Form", "Gallery", "10 Pages"},
			Technologies:  []string{"HTML5", "CSS3", "JavaScript", "Bootstrap 5"},
			DemoURL:       "https://demo.calius.digital/restaurant",
			Image:         "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800",
			Images:        []string{},
			Downloads:     75, Rating: 4.9, IsFeatured: true, IsNew: true,
		},
	}
}

func Portfolio() []model.PortfolioItem {
	return []model.PortfolioItem{
		{
			ID: "1", Title: "TechCorp Website", Client: "TechCorp Indonesia", Category: "company-profile",
			DescriptionID: "Website company profile modern untuk perusahaan teknologi.",
			DescriptionEN: "Modern company profile website for technology company.",
			Image:         "https://images.unsplash.com/photo-1497366216548-37526070297c?w=800",
			Images:        []string{},
			URL:           "https://techcorp.id",
			Technologies:  []string{"React", "Node.js", "MongoDB"},
			Year:          2024, IsFeatured: true,
		},
		{
			ID: "2", Title: "FashionHub Store", Client: "FashionHub", Category: "e-commerce",
			DescriptionID: "Platform e-commerce fashion dengan 500+ produk.",
			DescriptionEN: "Fashion e-commerce platform with 500+ products.",
			Image:         "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=800",
			Images:        []string{},
			URL:           "https://fashionhub.co.id",
			Technologies:  []string{"Next.js", "Stripe", "PostgreSQL"},
			Year:          2024, IsFeatured: true,
		},
		{
			ID: "3", Title: "StartupX Landing", Client: "StartupX", Category: "landing-page",
			DescriptionID: "Landing page untuk peluncuran aplikasi startup.",
			DescriptionEN: "Landing page for startup app launch.",
			Image:         "https://images.unsplash.com/photo-1559136555-9303baea8ebd?w=800",
			Images:        []string{},
			URL:           "https://startupx.io",
			Technologies:  []string{"React", "Tailwind CSS", "Framer Motion"},
			Year:          2024, IsFeatured: true,
		},
		{
			ID: "4", Title: "Resto Nusantara", Client: "Resto Nusantara", Category: "restaurant",
			DescriptionID: "Website restoran dengan sistem reservasi online.",
			DescriptionEN: "Restaurant website with online reservation system.",
			Image:         "https://images.unsplash.com/photo-1552566626-52f8b828add9?w=800",
			Images:        []string{},
			URL:           "https://restonusantara.com",
			Technologies:  []string{"Vue.js", "Laravel", "MySQL"},
			Year:          2023,
		},
	}
}

func Testimonials() []model.Testimonial {
	return []model.Testimonial{
		{
			ID: "1", Name: "Ahmad Rizki", Role: "CEO", Company: "TechCorp Indonesia",
			ContentID: "Calius Digital membantu kami membangun website yang profesional dan cepat. Hasilnya luar biasa!",
			ContentEN: "Calius Digital helped us build a professional and fast website. The result is amazing!",
			Rating:    5,
		},
		{
			ID: "2", Name: "Sarah Wijaya", Role: "Marketing Director", Company: "FashionHub",
			ContentID: "Tim yang sangat responsif dan hasil kerjanya melampaui ekspektasi kami.",
			ContentEN: "Very responsive team and their work exceeded our expectations.",
			Rating:    5,
		},
		{
			ID: "3", Name: "Budi Santoso", Role: "Founder", Company: "StartupX",
			ContentID: "Landing page yang dibuat sangat membantu meningkatkan konversi campaign kami hingga 40%.",
			ContentEN: "The landing page they created helped increase our campaign conversion by 40%.",
			Rating:    5,
		},
	}
}

func BlogPosts() []model.BlogPost {
	return []model.BlogPost{
		{
			ID: "1", Slug: "tips-memilih-template-website",
			TitleID:     "Tips Memilih Template Website yang Tepat",
			TitleEN:     "Tips for Choosing the Right Website Template",
			ExcerptID:   "Panduan lengkap memilih template website yang sesuai dengan kebutuhan bisnis Anda.",
			ExcerptEN:   "Complete guide to choosing a website template that fits your business needs.",
			ContentID:   "Template website adalah...",
			ContentEN:   "A website template is...",
			Image:       "https://images.unsplash.com/photo-1467232004584-a241de8bcf5d?w=800",
			Author:      "Calius Team",
			Category:    "tips",
			Tags:        []string{"template", "website", "tips"},
			PublishedAt: "2024-01-15", ReadTime: 5,
		},
		{
			ID: "2", Slug: "pentingnya-website-untuk-bisnis",
			TitleID:     "Pentingnya Website untuk Bisnis di Era Digital",
			TitleEN:     "The Importance of Website for Business in Digital Era",
			ExcerptID:   "Mengapa setiap bisnis membutuhkan website profesional di tahun 2024.",
			ExcerptEN:   "Why every business needs a professional website in 2024.",
			ContentID:   "Di era digital...",
			ContentEN:   "In the digital era...",
			Image:       "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=800",
			Author:      "Calius Team",
			Category:    "business",
			Tags:        []string{"business", "website", "digital"},
			PublishedAt: "2024-01-10", ReadTime: 7,
		},
	}
}

func Pricing() []model.PricingPackage {
	return []model.PricingPackage{
		{
			ID: "1", NameID: "Starter", NameEN: "Starter",
			DescriptionID: "Cocok untuk bisnis kecil yang baru mulai",
			DescriptionEN: "Perfect for small businesses just starting out",
			Price:         3500000,
			PriceNoteID:   "Pembayaran sekali", PriceNoteEN: "One-time payment",
			Features: []model.PricingFeature{
				{TextID: "5 Halaman Website", TextEN: "5 Website Pages", Included: true},
				{TextID: "Responsive Design", TextEN: "Responsive Design", Included: true},
				{TextID: "Contact Form", TextEN: "Contact Form", Included: true},
				{TextID: "SEO Basic", TextEN: "Basic SEO", Included: true},
				{TextID: "1 Bulan Support", TextEN: "1 Month Support", Included: true},
				{TextID: "Custom Features", TextEN: "Custom Features", Included: false},
				{TextID: "E-commerce", TextEN: "E-commerce", Included: false},
			},
			Order: 1,
		},
		{
			ID: "2", NameID: "Professional", NameEN: "Professional",
			DescriptionID: "Untuk bisnis yang ingin berkembang",
			DescriptionEN: "For businesses looking to grow",
			Price:         7500000,
			PriceNoteID:   "Pembayaran sekali", PriceNoteEN: "One-time payment",
			Features: []model.PricingFeature{
				{TextID: "10 Halaman Website", TextEN: "10 Website Pages", Included: true},
				{TextID: "Responsive Design", TextEN: "Responsive Design", Included: true},
				{TextID: "Contact Form", TextEN: "Contact Form", Included: true},
				{TextID: "SEO Advanced", TextEN: "Advanced SEO", Included: true},
				{TextID: "3 Bulan Support", TextEN: "3 Months Support", Included: true},
				{TextID: "Custom Features", TextEN: "Custom Features", Included: true},
				{TextID: "E-commerce", TextEN: "E-commerce", Included: false},
			},
			IsPopular: true, Order: 2,
		},
		{
			ID: "3", NameID: "Enterprise", NameEN: "Enterprise",
			DescriptionID: "Solusi lengkap untuk bisnis besar",
			DescriptionEN: "Complete solution for large businesses",
			Price:         15000000,
			PriceNoteID:   "Pembayaran sekali", PriceNoteEN: "One-time payment",
			Features: []model.PricingFeature{
				{TextID: "Unlimited Halaman", TextEN: "Unlimited Pages", Included: true},
				{TextID: "Responsive Design", TextEN: "Responsive Design", Included: true},
				{TextID: "Contact Form", TextEN: "Contact Form", Included: true},
				{TextID: "SEO Premium", TextEN: "Premium SEO", Included: true},
				{TextID: "6 Bulan Support", TextEN: "6 Months Support", Included: true},
				{TextID: "Custom Features", TextEN: "Custom Features", Included: true},
				{TextID: "E-commerce", TextEN: "E-commerce", Included: true},
			},
			Order: 3,
		},
	}
}
