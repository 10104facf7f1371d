package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/cafe-api/internal/domain"
)

func validRequest() AddCafeRequest {
	return AddCafeRequest{
		Name:     "Old Spike Roastery",
		MapURL:   "https://g.page/oldspike",
		ImgURL:   "https://example.com/oldspike.jpg",
		Location: "Peckham",
		Seats:    "10-20",
	}
}

func TestAddCafeRequest_Validate(t *testing.T) {
	req := validRequest()
	assert.NoError(t, req.Validate())

	tests := []struct {
		name   string
		mutate func(r *AddCafeRequest)
		field  string
	}{
		{"missing name", func(r *AddCafeRequest) { r.Name = "" }, "name"},
		{"missing map_url", func(r *AddCafeRequest) { r.MapURL = "" }, "map_url"},
		{"missing img_url", func(r *AddCafeRequest) { r.ImgURL = "" }, "img_url"},
		{"missing loc", func(r *AddCafeRequest) { r.Location = "" }, "loc"},
		{"missing seats", func(r *AddCafeRequest) { r.Seats = "" }, "seats"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestAddCafeRequest_Validate_CoffeePriceOptional(t *testing.T) {
	req := validRequest()
	req.CoffeePrice = nil

	assert.NoError(t, req.Validate())
}

func TestAddCafeRequest_ToDomain_CopiesFields(t *testing.T) {
	price := "£2.75"
	req := validRequest()
	req.CoffeePrice = &price

	cafe, err := req.ToDomain(false)
	require.NoError(t, err)

	assert.Equal(t, domain.Cafe{
		Name:        "Old Spike Roastery",
		MapURL:      "https://g.page/oldspike",
		ImgURL:      "https://example.com/oldspike.jpg",
		Location:    "Peckham",
		Seats:       "10-20",
		CoffeePrice: &price,
	}, cafe)
}

// Legacy coercion: any non-empty value is true, including "false".
func TestAddCafeRequest_ToDomain_LegacyBooleans(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"on", true},
		{"false", true},
		{"0", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			req := validRequest()
			req.Sockets, req.Toilet, req.Wifi, req.Calls = tt.raw, tt.raw, tt.raw, tt.raw

			cafe, err := req.ToDomain(false)
			require.NoError(t, err)

			assert.Equal(t, tt.want, cafe.HasSockets)
			assert.Equal(t, tt.want, cafe.HasToilet)
			assert.Equal(t, tt.want, cafe.HasWifi)
			assert.Equal(t, tt.want, cafe.CanTakeCalls)
		})
	}
}

func TestAddCafeRequest_ToDomain_StrictBooleans(t *testing.T) {
	tests := []struct {
		raw     string
		want    bool
		wantErr bool
	}{
		{"", false, false},
		{"1", true, false},
		{"true", true, false},
		{"TRUE", true, false},
		{"false", false, false},
		{"0", false, false},
		{"on", false, true},
		{"yes", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			req := validRequest()
			req.Wifi = tt.raw

			cafe, err := req.ToDomain(true)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "wifi")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, cafe.HasWifi)
			assert.False(t, cafe.HasSockets)
		})
	}
}
