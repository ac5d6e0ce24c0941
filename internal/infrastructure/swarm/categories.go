package swarm

import "strings"

// Swarm reports fine-grained industries (hundreds of distinct values); the
// dashboard filters on ~12 broad categories instead. First matching keyword
// wins, so the more specific buckets come before the catch-all tech one.

const CategoryOther = "Other"

var industryCategories = []struct {
	name     string
	keywords []string
}{
	{"Artificial Intelligence & Data", []string{
		"artificial intelligence", "machine learning", "analytics", "big data",
		"data science", "business intelligence", "data management", "database",
		"data infrastructure", "natural language processing", "computer vision",
		"deep learning",
	}},
	{"Cybersecurity", []string{
		"cyber security", "cybersecurity", "information security", "network security",
		"endpoint security", "identity management", "threat detection",
		"security software", "data security", "security",
	}},
	{"Healthcare & Biotech", []string{
		"health care", "healthcare", "biotechnology", "biopharma", "medical",
		"pharmaceutical", "life sciences", "clinical trials", "telemedicine",
		"digital health", "wellness", "hospital", "diagnostics", "therapeutics",
		"genomics", "health tech",
	}},
	{"Financial Services", []string{
		"financial services", "fintech", "banking", "finance", "insurance",
		"payments", "lending", "wealth management", "asset management",
		"capital markets", "trading", "investment", "accounting", "insurtech",
	}},
	{"E-commerce & Retail", []string{
		"e-commerce", "ecommerce", "retail", "marketplace", "consumer goods",
		"fashion", "apparel", "luxury goods", "beauty", "food delivery",
		"grocery", "direct-to-consumer",
	}},
	{"Marketing & Advertising", []string{
		"marketing", "advertising", "adtech", "seo", "brand management",
		"public relations", "sales enablement",
	}},
	{"Media & Entertainment", []string{
		"media", "entertainment", "gaming", "video games", "streaming", "music",
		"publishing", "social media", "social network", "creator economy",
		"esports", "film", "sports",
	}},
	{"Real Estate & Construction", []string{
		"real estate", "construction", "property", "proptech", "architecture",
		"infrastructure", "facilities",
	}},
	{"Manufacturing & Industrial", []string{
		"manufacturing", "industrial", "supply chain", "warehousing",
		"distribution", "procurement", "3d printing", "robotics",
		"internet of things", "electronics", "materials", "textiles",
	}},
	{"Transportation & Automotive", []string{
		"transportation", "automotive", "mobility", "logistics", "shipping",
		"freight", "delivery", "ridesharing", "electric vehicles",
		"autonomous vehicles", "aerospace", "aviation",
	}},
	{"Education", []string{
		"education", "edtech", "e-learning", "training", "tutoring",
	}},
	{"Energy & Sustainability", []string{
		"energy", "renewable", "solar", "cleantech", "climate", "sustainability",
		"utilities", "oil and gas",
	}},
	{"Technology & Software", []string{
		"software", "saas", "cloud", "information technology", "it services",
		"computer", "platform", "apps", "internet", "enterprise", "devops",
		"api", "web", "mobile", "hosting", "automation", "tech", "crm", "erp",
	}},
}

// CategorizeIndustry maps a raw Swarm industry onto a broad category.
func CategorizeIndustry(industry string) string {
	lower := strings.ToLower(strings.TrimSpace(industry))
	if lower == "" {
		return ""
	}

	for _, cat := range industryCategories {
		for _, keyword := range cat.keywords {
			if strings.Contains(lower, keyword) {
				return cat.name
			}
		}
	}
	return CategoryOther
}
