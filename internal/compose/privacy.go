package compose

import "github.com/boddenberg/desking-go/internal/domain"

// privacyFields fills the store's privacy notice acknowledgment.
func (c *Composer) privacyFields(deal *domain.DealRecord) domain.FieldMap {
	f := domain.FieldMap{}
	f.SetText("customer", deal.Customer)
	f.SetText("address", deal.Address+", "+deal.City+", "+deal.State+" "+deal.Zip)
	f.SetText("dealer", deal.Dealer)
	f.SetText("date", c.today())
	return f
}
