package services

import "spacex-dashboard/models"

// FilterBySite returns the records launched from site, in table order.
// The AllSites sentinel returns every record; an unknown site returns none.
func FilterBySite(records []models.LaunchRecord, site string) []models.LaunchRecord {
	if site == models.AllSites {
		out := make([]models.LaunchRecord, len(records))
		copy(out, records)
		return out
	}

	out := make([]models.LaunchRecord, 0)
	for _, r := range records {
		if r.Site == site {
			out = append(out, r)
		}
	}
	return out
}

// FilterByPayloadRange returns the records with payload mass in [low, high].
// If low > high the result is empty.
func FilterByPayloadRange(records []models.LaunchRecord, low, high float64) []models.LaunchRecord {
	rng := models.PayloadRange{Low: low, High: high}

	out := make([]models.LaunchRecord, 0)
	if !rng.Valid() {
		return out
	}
	for _, r := range records {
		if rng.Contains(r.PayloadMassKg) {
			out = append(out, r)
		}
	}
	return out
}

// FilterSelection applies the site filter then the payload filter.
func FilterSelection(records []models.LaunchRecord, sel models.FilterSelection) []models.LaunchRecord {
	bySite := FilterBySite(records, sel.Site)
	return FilterByPayloadRange(bySite, sel.Payload.Low, sel.Payload.High)
}
