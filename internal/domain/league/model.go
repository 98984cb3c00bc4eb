package league

import "fmt"

// Category groups leagues into the sport taxonomy used by the calendar UI.
const (
	CategorySoccer     = "Soccer"
	CategoryBaseball   = "Baseball"
	CategoryEsports    = "Esports"
	CategoryBasketball = "Basketball"
	CategoryFootball   = "Football"
	CategoryHockey     = "Hockey"
	CategoryMotorsport = "Motorsport"
)

// League is static reference data; rows are seeded once and rarely change.
type League struct {
	ID       string
	Name     string
	Category string
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.Category == "" {
		return fmt.Errorf("league category is required")
	}

	return nil
}
