package model

// SiteConfig is the single editable record driving the public page: venue
// identity, welcome copy, accent color and contact details. Exactly one
// instance exists; saves replace it wholesale.
type SiteConfig struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	WelcomeMessage string `json:"welcomeMessage"`
	PrimaryColor   string `json:"primaryColor"`
	ContactPhone   string `json:"contactPhone"`
	Address        string `json:"address"`
}

// DefaultSiteConfig returns the configuration served before the admin has
// saved one. Reads never write the default back; it stays implicit until
// the first save.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Name:           "Lumière Bistro",
		Description:    "Experience the finest modern dining in the heart of the city.",
		WelcomeMessage: "Book your table for an unforgettable evening.",
		PrimaryColor:   "slate",
		ContactPhone:   "+1 (555) 000-0000",
		Address:        "123 Innovation Ave, Tech City",
	}
}
