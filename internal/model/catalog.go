package model

// Sport is a top-level sport category (football, basketball, ...).
type Sport struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// League is a competition within a sport.
type League struct {
	ID        string `json:"id"`
	SportID   string `json:"sport_id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	LogoURL   string `json:"logo_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Team is a club or national side within a sport.
type Team struct {
	ID        string `json:"id"`
	SportID   string `json:"sport_id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	LogoURL   string `json:"logo_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
