package models

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

type MediaItem struct {
	ID      string    `json:"id"`
	Type    MediaType `json:"type"`
	URL     string    `json:"url"`
	Caption string    `json:"caption,omitempty"`
}

// TransferInfo holds the bank account shown to clients after booking.
// All fields are free text; no format validation is performed anywhere.
type TransferInfo struct {
	TaxID         string `json:"tax_id"`
	HolderName    string `json:"holder_name"`
	BankName      string `json:"bank_name"`
	AccountType   string `json:"account_type"`
	AccountNumber string `json:"account_number"`
}

type SiteConfig struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	HeroImage    string       `json:"hero_image"`
	PriceBase    int          `json:"price_base"`
	PriceExtra   int          `json:"price_extra"`
	Gallery      []MediaItem  `json:"gallery"`
	TransferInfo TransferInfo `json:"transfer_info"`
}

// DefaultSiteConfig returns the hardcoded site content a fresh store starts
// with. There is no persistence: a restart always comes back to this.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Title:       "Tugar Tugar",
		Description: "El espacio perfecto para tus celebraciones. Reserva tu fecha hoy mismo.",
		HeroImage:   "https://images.unsplash.com/photo-1519167758481-83f550bb49b3?auto=format&fit=crop&q=80&w=2000",
		PriceBase:   100000,
		PriceExtra:  5000,
		Gallery: []MediaItem{
			{
				ID:      "1",
				Type:    MediaImage,
				URL:     "https://images.unsplash.com/photo-1519167758481-83f550bb49b3?auto=format&fit=crop&q=80&w=800",
				Caption: "Salón Principal",
			},
			{
				ID:      "2",
				Type:    MediaImage,
				URL:     "https://images.unsplash.com/photo-1464366400600-7168b8af0bc3?auto=format&fit=crop&q=80&w=800",
				Caption: "Decoración Elegante",
			},
			{
				ID:      "3",
				Type:    MediaImage,
				URL:     "https://images.unsplash.com/photo-1530103862676-de3c9a59af38?auto=format&fit=crop&q=80&w=800",
				Caption: "Mesas y Montaje",
			},
		},
		TransferInfo: TransferInfo{},
	}
}
