package es

// ChannelES is the channel document shape in the search index. Only
// display and ranking fields are indexed; inventory stays in MySQL.
type ChannelES struct {
	ID              uint64  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	AvatarURL       string  `json:"avatar_url"`
	SubscriberCount int64   `json:"subscriber_count"`
	GrowthRate      float64 `json:"growth_rate"`
	PricePerShare   float64 `json:"price_per_share"`
	IsActive        bool    `json:"is_active"`
}
