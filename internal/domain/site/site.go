// Package site holds the singleton configuration records and the small
// editorial collections that drive the public pages.
package site

type SiteConfig struct {
	SiteName    string `json:"siteName"`
	Tagline     string `json:"tagline"`
	LogoURL     string `json:"logoUrl"`
	ContactMail string `json:"contactMail"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

type AgencyInfo struct {
	About   string `json:"about"`
	Mission string `json:"mission"`
	Vision  string `json:"vision"`
	Values  string `json:"values"`
}

type AgencyService struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type TimelineEntry struct {
	ID    string `json:"id"`
	Year  string `json:"year"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type Partner struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
	Website string `json:"website"`
}

type Achievement struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Year  string `json:"year"`
}

type NavLink struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Path  string `json:"path"`
	Order int    `json:"order"`
}

type PageContent struct {
	ID    string `json:"id"`
	Page  string `json:"page"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type JuryMember struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

type RegistrationStaff struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
