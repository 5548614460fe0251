package favorite

type AddFavoriteRequest struct {
	Label     string  `json:"label" binding:"required"`
	Address   string  `json:"address" binding:"required"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
