package compose

import "github.com/boddenberg/desking-go/internal/domain"

// odometerFields fills the odometer disclosure (MVR-180) for the sold
// vehicle: dealer sells, customer buys.
func (c *Composer) odometerFields(deal *domain.DealRecord) domain.FieldMap {
	dealer := c.dealer(deal)

	f := domain.FieldMap{}
	f.SetText("mvr180Year", deal.Year)
	f.SetText("mvr180Make", deal.Make)
	f.SetText("mvr180BodyStyle", deal.BodyStyle)
	f.SetText("mvr180Model", deal.Model)
	f.SetText("mvr180VIN", deal.VIN)
	f.SetText("mvr180Odometer", deal.Odometer)

	f.SetText("mvr180SellName", dealer.Name)
	f.SetText("mvr180SellerName2", dealer.Name)
	f.SetText("mvr180SellerAddress", dealer.Street)
	f.SetText("mvr180SellerCity", dealer.City)
	f.SetText("mvr180SellerState", dealer.State)
	f.SetText("mvr180SellerZip", dealer.Zip)

	f.SetText("mvr180BuyersName", deal.Customer)
	f.SetText("mvr180BuyersAddress", deal.Address)
	f.SetText("mvr180BuyerCity", deal.City)
	f.SetText("mvr180BuyerState", deal.State)
	f.SetText("mvr180BuyersZip", deal.Zip)
	return f
}

// tradeOdometerFields fills the same disclosure for the trade-in, with the
// roles reversed: customer sells the trade to the store.
func (c *Composer) tradeOdometerFields(deal *domain.DealRecord) domain.FieldMap {
	dealer := c.dealer(deal)
	t := deal.Trade(0)

	f := domain.FieldMap{}
	f.SetText("YEARMVR180", t.Year)
	f.SetText("MAKEMVR180", t.Make)
	f.SetText("MODELMVR180", t.Model)
	f.SetText("VINMVR180", t.VIN)
	f.SetText("ODOMETERMVR180", t.Miles)

	f.SetText("SELLERNAMEMVR180", deal.Customer)
	f.SetText("SELLERNAME2MVR180", deal.Customer)
	f.SetText("SELLERADDRESSMVR180", deal.Address)
	f.SetText("SELLERCITYMVR180", deal.City)
	f.SetText("SELLERSTATEMVR180", deal.State)
	f.SetText("SELLERZIPMVR180", deal.Zip)

	f.SetText("BUYERNAMEMVR180", dealer.Name)
	f.SetText("BUYERADDRESSMVR180", dealer.Street)
	f.SetText("BUYERCITYMVR180", dealer.City)
	f.SetText("BUYERSTATEMVR180", dealer.State)
	f.SetText("BUYERZIPMVR180", dealer.Zip)
	return f
}
