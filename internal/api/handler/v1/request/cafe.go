package request

import (
	"fmt"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/cafe-api/internal/domain"
)

// AddCafeRequest is bound from form data. Boolean fields are kept raw so the
// coercion rule can be chosen when converting to a domain.Cafe.
type AddCafeRequest struct {
	Name     string `json:"name" form:"name"`
	MapURL   string `json:"map_url" form:"map_url"`
	ImgURL   string `json:"img_url" form:"img_url"`
	Location string `json:"loc" form:"loc"`
	Seats    string `json:"seats" form:"seats"`

	Sockets string `json:"sockets" form:"sockets"`
	Toilet  string `json:"toilet" form:"toilet"`
	Wifi    string `json:"wifi" form:"wifi"`
	Calls   string `json:"calls" form:"calls"`

	// CoffeePrice is nil when the key is missing from the form.
	CoffeePrice *string `json:"coffee_price" form:"-"`
}

func (req *AddCafeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.MapURL, validation.Required),
		validation.Field(&req.ImgURL, validation.Required),
		validation.Field(&req.Location, validation.Required),
		validation.Field(&req.Seats, validation.Required),
	)
}

// ToDomain builds the cafe to insert.
//
// With strictBooleans off, a flag is true whenever its value is non-empty,
// so "false" and "0" are true. With it on, values go through
// strconv.ParseBool and a missing or empty value is false.
func (req *AddCafeRequest) ToDomain(strictBooleans bool) (domain.Cafe, error) {
	cafe := domain.Cafe{
		Name:        req.Name,
		MapURL:      req.MapURL,
		ImgURL:      req.ImgURL,
		Location:    req.Location,
		Seats:       req.Seats,
		CoffeePrice: req.CoffeePrice,
	}

	var err error
	if cafe.HasSockets, err = formBool("sockets", req.Sockets, strictBooleans); err != nil {
		return domain.Cafe{}, err
	}
	if cafe.HasToilet, err = formBool("toilet", req.Toilet, strictBooleans); err != nil {
		return domain.Cafe{}, err
	}
	if cafe.HasWifi, err = formBool("wifi", req.Wifi, strictBooleans); err != nil {
		return domain.Cafe{}, err
	}
	if cafe.CanTakeCalls, err = formBool("calls", req.Calls, strictBooleans); err != nil {
		return domain.Cafe{}, err
	}

	return cafe, nil
}

func formBool(key, raw string, strict bool) (bool, error) {
	if !strict || raw == "" {
		return raw != "", nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s: %q is not a boolean", key, raw)
	}

	return v, nil
}
