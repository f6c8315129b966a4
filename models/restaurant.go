package models

type Restaurant struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Image           string  `json:"image,omitempty"`
	Cuisine         string  `json:"cuisine"`
	Rating          float64 `json:"rating,omitempty"`
	DeliveryTimeMin int     `json:"delivery_time_min"`
	DeliveryTimeMax int     `json:"delivery_time_max"`
	MinOrder        int     `json:"min_order,omitempty"`
}
