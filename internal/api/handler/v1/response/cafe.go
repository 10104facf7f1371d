package response

import (
	"github.com/vietanh2810/cafe-api/internal/domain"
)

type Cafe struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	MapURL       string  `json:"map_url"`
	ImgURL       string  `json:"img_url"`
	Location     string  `json:"location"`
	Seats        string  `json:"seats"`
	HasToilet    bool    `json:"has_toilet"`
	HasWifi      bool    `json:"has_wifi"`
	HasSockets   bool    `json:"has_sockets"`
	CanTakeCalls bool    `json:"can_take_calls"`
	CoffeePrice  *string `json:"coffee_price"`
}

type CafeResponse struct {
	Cafe Cafe `json:"cafe"`
}

type CafesResponse struct {
	Cafes []Cafe `json:"cafes"`
}

type Success struct {
	Response map[string]string `json:"response"`
}

func NewCafe(c domain.Cafe) Cafe {
	return Cafe{
		ID:           c.ID,
		Name:         c.Name,
		MapURL:       c.MapURL,
		ImgURL:       c.ImgURL,
		Location:     c.Location,
		Seats:        c.Seats,
		HasToilet:    c.HasToilet,
		HasWifi:      c.HasWifi,
		HasSockets:   c.HasSockets,
		CanTakeCalls: c.CanTakeCalls,
		CoffeePrice:  c.CoffeePrice,
	}
}

// NewCafes never returns nil, so an empty result renders as [].
func NewCafes(cafes []domain.Cafe) CafesResponse {
	out := make([]Cafe, len(cafes))
	for i, c := range cafes {
		out[i] = NewCafe(c)
	}

	return CafesResponse{Cafes: out}
}

func NewSuccess(message string) Success {
	return Success{
		Response: map[string]string{"success": message},
	}
}

type Healthcheck struct {
	Status string `json:"status"`
}
