package mailer

import (
	"bytes"
	"html/template"
	"time"

	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
)

var (
	otpTemplate = template.Must(template.New("otp").Parse(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
<h2>{{.Heading}}</h2>
<p>{{.Intro}}</p>
<p style="font-size:32px;font-weight:bold;letter-spacing:6px">{{.Code}}</p>
<p>This code expires in {{.Minutes}} minutes.</p>
<p>If you did not request this code, you can ignore this email.</p>
</div>`))

	orderTemplate = template.Must(template.New("order").Parse(`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto">
<h2>{{.Heading}}</h2>
<p>Hi {{.Name}},</p>
<p>{{.Message}}</p>
<p>Order: <strong>{{.OrderID}}</strong></p>
{{if .PickupOTP}}<p>Pickup code: <strong style="letter-spacing:4px">{{.PickupOTP}}</strong></p>{{end}}
<p>Total: {{.Total}}</p>
</div>`))
)

// OTPEmail renders the subject and body for a verification code.
func OTPEmail(purpose constant.OTPPurpose, code string, validity time.Duration) (string, string, error) {
	data := struct {
		Heading string
		Intro   string
		Code    string
		Minutes int
	}{
		Heading: "Verify your email",
		Intro:   "Use this code to confirm your order:",
		Code:    code,
		Minutes: int(validity / time.Minute),
	}
	subject := "Your order verification code"
	if purpose == constant.OTPPurposePaymentSettings {
		data.Heading = "Payment settings access"
		data.Intro = "Use this code to unlock the payment settings:"
		subject = "Payment settings verification code"
	}

	var buf bytes.Buffer
	if err := otpTemplate.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}

// OrderEmail renders a customer notification for an order event.
func OrderEmail(n *model.OrderNotification) (string, string, error) {
	data := struct {
		Heading   string
		Name      string
		Message   string
		OrderID   string
		PickupOTP string
		Total     string
	}{
		Name:    n.CustomerName,
		OrderID: n.OrderID,
		Total:   n.TotalAmount.StringFixed(constant.MoneyScale),
	}

	var subject string
	switch n.Event {
	case constant.OrderEventPlaced:
		subject = "Order " + n.OrderID + " received"
		data.Heading = "Thanks for your order"
		data.Message = "We have received your order. Show the pickup code when you collect it."
		data.PickupOTP = n.PickupOTP
	case constant.OrderEventReady:
		subject = "Order " + n.OrderID + " is ready"
		data.Heading = "Your order is ready"
		data.Message = "Your order is ready for pickup."
		data.PickupOTP = n.PickupOTP
	default:
		subject = "Order " + n.OrderID + " completed"
		data.Heading = "Order collected"
		data.Message = "Your order has been handed over. Enjoy!"
	}

	var buf bytes.Buffer
	if err := orderTemplate.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return subject, buf.String(), nil
}
