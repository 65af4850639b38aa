package compose

import "github.com/boddenberg/desking-go/internal/domain"

// titleFields fills the state title and registration application (MVR-1).
// Field names follow the DMV form exactly, odd capitalization included.
func (c *Composer) titleFields(deal *domain.DealRecord) domain.FieldMap {
	dealer := c.dealer(deal)

	f := domain.FieldMap{}
	f.SetText("YEAR", deal.Year)
	f.SetText("MAKE", deal.Make)
	f.SetText("BODY STYLE", deal.BodyStyle)
	f.SetText("SERIES MODEL", deal.Model)
	f.SetText("VEHICLE IDENTIFICATION NUMBER", deal.VIN)
	f.SetText("FUEL TYPE", deal.FuelType)
	f.SetText("ODOMETER READING", deal.Odometer)

	f.SetText("Owner 1 ID", deal.DriversLicense)
	f.SetText("Full Legal Name of Owner 1 First Middle Last Suffix or Company Name", deal.Customer)
	f.SetText("Residence Address Individual Business Address Firm City and State Zip Code",
		deal.Address+"         "+deal.City+", "+deal.State+"         "+deal.Zip)
	f.SetText("Tax County", deal.County)
	f.SetText("List Plate Number and Expiration", deal.PlateNumber+"           "+deal.PlateExpiration)

	f.SetText("Lienholder 1 name", deal.Lienholder.Name)
	f.SetText("Address", deal.Lienholder.Address)
	f.SetText("City", deal.Lienholder.City)
	f.SetText("State", deal.Lienholder.State)
	f.SetText("Zip Code", deal.Lienholder.Zip)

	f.SetText("Insurance Company authorized in NC", deal.Insurance.Company)
	f.SetText("Policy Number", deal.Insurance.PolicyNumber)

	f.SetText("Purchase Date", c.today())
	f.SetText("From Whom Purchased Name and Address", dealer.Block())
	f.SetBool("No_2", true)
	f.SetBool("mvr1_cb_New", deal.IsNew())
	f.SetBool("mvr1_cb_Used", !deal.IsNew())
	return f
}
