package services

import (
	"os"

	"quickstay/models"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
)

// CreateCheckoutSession tạo phiên thanh toán Stripe cho một booking,
// trả về URL để client chuyển hướng
func CreateCheckoutSession(booking *models.Booking, origin string) (string, error) {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(booking.Room.Hotel.Name),
					},
					UnitAmount: stripe.Int64(int64(booking.TotalPrice * 100)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(origin + "/loader/my-bookings"),
		CancelURL:  stripe.String(origin + "/my-bookings"),
	}
	params.AddMetadata("bookingCode", booking.BookingCode)

	s, err := session.New(params)
	if err != nil {
		return "", err
	}
	return s.URL, nil
}
