package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/realtydesk/estate-notify/internal/entity"
)

type Portfolio struct {
	Listings []entity.Listing `json:"listings"`
}

func NewPortfolio() *Portfolio {
	return &Portfolio{}
}

func (p *Portfolio) Add(listings ...entity.Listing) {
	p.Listings = append(p.Listings, listings...)
}

// Format returns a formatted message list for listings, grouped by district.
// If no listings are available, returns ["No listings on the books."]
func (p *Portfolio) Format() []string {
	var result []string

	// If no listings, return specific message
	if len(p.Listings) == 0 {
		return []string{"No listings on the books."}
	}

	// Sort listings: by district (ascending), then by price (descending),
	// then by address (ascending)
	sort.Slice(p.Listings, func(i, j int) bool {
		// First: sort by district ascending
		if p.Listings[i].District != p.Listings[j].District {
			return p.Listings[i].District < p.Listings[j].District
		}

		// Second: if same district, sort by price descending (priciest first)
		if p.Listings[i].Price != p.Listings[j].Price {
			return p.Listings[i].Price > p.Listings[j].Price
		}

		// Third: if same price, sort by address ascending
		return p.Listings[i].Address < p.Listings[j].Address
	})

	currentDistrict := ""
	slice := "Listings on the books:"
	for _, listing := range p.Listings {
		status := "under construction"
		if listing.Finished {
			status = "finished"
		}

		if currentDistrict != listing.District {
			currentDistrict = listing.District
			slice += "\n\n" + fmt.Sprintf("<b>%s</b>", listing.District)
		}
		record := fmt.Sprintf("🔸 %s [%d rooms; %s] — %d",
			listing.Address,
			listing.Rooms,
			status,
			listing.Price,
		)

		slice += "\n" + record

		if len(slice) > 4000 {
			result = append(result, slice)
			slice = ""
		}
	}
	if len(strings.Trim(slice, " \n\r\t")) > 0 {
		result = append(result, slice)
	}

	return result
}
