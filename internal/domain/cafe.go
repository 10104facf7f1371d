package domain

type Cafe struct {
	ID           uint
	Name         string
	MapURL       string
	ImgURL       string
	Location     string
	Seats        string
	HasToilet    bool
	HasWifi      bool
	HasSockets   bool
	CanTakeCalls bool
	// CoffeePrice is free-form ("£2.40") and nil when unknown.
	CoffeePrice *string
}
