package models

// PayloadRange is an inclusive payload mass interval in kilograms.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Valid reports whether Low <= High.
func (p PayloadRange) Valid() bool {
	return p.Low <= p.High
}

// Contains reports whether mass lies within the range. An invalid range contains nothing.
func (p PayloadRange) Contains(mass float64) bool {
	return p.Valid() && mass >= p.Low && mass <= p.High
}

// FilterSelection is the transient UI state driving both charts.
type FilterSelection struct {
	Site    string       `json:"site"`
	Payload PayloadRange `json:"payload"`
}

// DefaultSelection is the initial UI state: every site, the full payload range.
func DefaultSelection(ds *Dataset) FilterSelection {
	return FilterSelection{
		Site:    AllSites,
		Payload: ds.PayloadBounds(),
	}
}
