package compose

import (
	"sort"
	"strings"

	"github.com/boddenberg/desking-go/internal/domain"
)

// DealerAddress is one selling location, split the way title and odometer
// forms want it: street, city, and a combined "ST ZIP" tail.
type DealerAddress struct {
	Name   string `json:"name"`
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// OneLine renders "street, city, ST ZIP" for forms with a single address box.
func (d DealerAddress) OneLine() string {
	return d.Street + ", " + d.City + ", " + d.State + " " + d.Zip
}

// Block renders the name-over-address layout used by seller boxes.
func (d DealerAddress) Block() string {
	return d.Name + "\n" + d.Street + "\n" + d.City + " " + d.State + " " + d.Zip
}

// Directory resolves a selling dealer name to its registered address.
type Directory struct {
	dealers map[string]DealerAddress
}

// DefaultDealers is the dealer group's store roster.
func DefaultDealers() []DealerAddress {
	return []DealerAddress{
		{Name: "MODERN NISSAN OF CONCORD, LLC", Street: "967 CONCORD PKWY S", City: "CONCORD", State: "NC", Zip: "28027"},
		{Name: "MODERN CHEVROLET WINSTON", Street: "5955 UNIVERSITY PKWY", City: "WINSTON-SALEM", State: "NC", Zip: "27105"},
		{Name: "MODERN CHEVROLET BURLINGTON", Street: "2616 ALAMANCE RD", City: "BURLINGTON", State: "NC", Zip: "27215"},
		{Name: "MODERN CADILLAC BURLINGTON", Street: "2616 ALAMANCE RD", City: "BURLINGTON", State: "NC", Zip: "27215"},
		{Name: "MODERN TOYOTA WINSTON", Street: "3178 PETERS CREEK PKWY", City: "WINSTON-SALEM", State: "NC", Zip: "27127"},
		{Name: "MODERN TOYOTA BOONE", Street: "225 MODERN DR", City: "BOONE", State: "NC", Zip: "28607"},
		{Name: "MODERN TOYOTA ASHEBORO", Street: "1636 EAST DIXIE DRIVE", City: "ASHEBORO", State: "NC", Zip: "27203"},
		{Name: "MODERN NISSAN WINSTON-SALEM", Street: "5795 UNIVERSITY PKWY", City: "WINSTON-SALEM", State: "NC", Zip: "27105"},
		{Name: "MODERN NISSAN HICKORY", Street: "840 HWY 70 SE", City: "HICKORY", State: "NC", Zip: "28602"},
		{Name: "MODERN NISSAN LAKE NORMAN", Street: "18615 STATESVILLE RD", City: "CORNELIUS", State: "NC", Zip: "28031"},
		{Name: "MODERN INFINITI WINSTON-SALEM", Street: "1500 PETERS CREEK PKWY", City: "WINSTON-SALEM", State: "NC", Zip: "27103"},
		{Name: "MODERN INFINITI GREENSBORO", Street: "3605 W WENDOVER AVE", City: "GREENSBORO", State: "NC", Zip: "27407"},
		{Name: "MODERN MAZDA OF BURLINGTON", Street: "2608 ALAMANCE RD", City: "BURLINGTON", State: "NC", Zip: "27215"},
		{Name: "MODERN HYUNDAI OF CONCORD", Street: "965 CONCORD PKWY S", City: "CONCORD", State: "NC", Zip: "28027"},
		{Name: "MODERN GENESIS OF CONCORD", Street: "965 CONCORD PKWY S", City: "CONCORD", State: "NC", Zip: "28027"},
		{Name: "MODERN SUBARU OF BOONE", Street: "185 MODERN DR", City: "BOONE", State: "NC", Zip: "28607"},
	}
}

func NewDirectory(dealers []DealerAddress) *Directory {
	m := make(map[string]DealerAddress, len(dealers))
	for _, d := range dealers {
		m[strings.ToUpper(strings.TrimSpace(d.Name))] = d
	}
	return &Directory{dealers: m}
}

// Lookup resolves a dealer by name, case-insensitively.
func (dir *Directory) Lookup(name string) (DealerAddress, error) {
	d, ok := dir.dealers[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return DealerAddress{}, &domain.ErrNotFound{Resource: "dealer", ID: name}
	}
	return d, nil
}

// List returns every known dealer sorted by name.
func (dir *Directory) List() []DealerAddress {
	out := make([]DealerAddress, 0, len(dir.dealers))
	for _, d := range dir.dealers {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
