package dto

type CreateListingRequest struct {
	Title       string   `json:"title" validate:"required,max=120"`
	Rank        string   `json:"rank" validate:"required,max=50"`
	Level       int      `json:"level" validate:"gte=0"`
	Operators   int      `json:"operators" validate:"gte=0"`
	Renown      int      `json:"renown" validate:"gte=0"`
	Credits     int      `json:"credits" validate:"gte=0"`
	Price       float64  `json:"price" validate:"gte=0"`
	Description string   `json:"description" validate:"max=4000"`
	Images      []string `json:"images" validate:"max=10,dive,image_ref"`
}

type CreateListingResponse struct {
	Success   bool `json:"success"`
	ListingID uint `json:"listing_id"`
}

type ImageUploadResponse struct {
	Success      bool   `json:"success"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}
