package export_booking

import (
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

const (
	titlePrefix  = "Salon: "
	stylistLabel = "Stylist"
	noStylist    = "None"
)

// eventTitle заголовок события, например "Salon: Haircut"
func eventTitle(service *domain.SalonService) string {
	return titlePrefix + service.Name
}

// eventDetails описание события: мастер и заметки клиента
func eventDetails(stylist *domain.Stylist, notes string) string {
	name := noStylist
	if stylist != nil {
		name = stylist.Name
	}
	return strings.TrimSpace(stylistLabel + ": " + name + ". " + strings.TrimSpace(notes))
}
