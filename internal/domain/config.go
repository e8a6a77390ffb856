package domain

// SalonService услуга из каталога салона
type SalonService struct {
	ID              string
	Name            string
	DurationMinutes int
	PriceEUR        float64
}

// Stylist мастер салона
type Stylist struct {
	ID        string
	Name      string
	AvatarURL string
}
