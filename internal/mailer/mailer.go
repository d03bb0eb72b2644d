package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/deepakkode/scrap-marketplace/internal/listing/domain"
)

// Sender is what the contact-seller and listing flows need from mail.
type Sender interface {
	SendListingCreatedEmail(toEmail, listingTitle string) error
	SendInquiryEmail(listing *domain.Listing, buyerName, buyerEmail, message string) error
}

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(host string, port int, email, password string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, email, password),
		from:   email,
	}
}

func (m *Mailer) SendListingCreatedEmail(toEmail, listingTitle string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "New Listing Created")
	msg.SetBody("text/plain", "Your listing '"+listingTitle+"' has been created successfully.")

	return m.dialer.DialAndSend(msg)
}

// SendInquiryEmail forwards a buyer's inquiry to the listing's seller,
// replicating the pre-filled contact mail of the marketplace UI.
func (m *Mailer) SendInquiryEmail(listing *domain.Listing, buyerName, buyerEmail, message string) error {
	sellerName := listing.Seller.Name
	if sellerName == "" {
		sellerName = "there"
	}
	if buyerName == "" {
		buyerName = "Buyer"
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nI'm interested in your %s listing:\n\nTitle: %s\nQuantity: %g %s\nPrice: %g per %s\n\nMessage:\n%s\n\nBest regards,\n%s",
		sellerName, listing.Material, listing.Title,
		listing.Quantity, listing.Unit, listing.Price, listing.Unit,
		message, buyerName,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", listing.Seller.Email)
	msg.SetHeader("Reply-To", buyerEmail)
	msg.SetHeader("Subject", "Inquiry about "+listing.Title)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
