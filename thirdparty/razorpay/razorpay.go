package razorpay

import (
	"context"
	"fmt"
	"sync"

	"github.com/muhammadheryan/food-storefront/model"
	rzp "github.com/razorpay/razorpay-go"
	rzputils "github.com/razorpay/razorpay-go/utils"
)

// Gateway is the hosted payment provider.
type Gateway interface {
	CreateOrder(ctx context.Context, creds *model.PaymentCredentials, amountMinor int64, currency, receipt string) (string, error)
	VerifySignature(creds *model.PaymentCredentials, gatewayOrderID, paymentID, signature string) bool
}

type Client struct {
	mu      sync.Mutex
	clients map[string]*rzp.Client
}

func New() *Client {
	return &Client{clients: make(map[string]*rzp.Client)}
}

// client reuses one SDK client per credential pair; credentials rotate rarely.
func (c *Client) client(creds *model.PaymentCredentials) *rzp.Client {
	k := creds.KeyID + ":" + creds.KeySecret
	c.mu.Lock()
	defer c.mu.Unlock()
	if cl, ok := c.clients[k]; ok {
		return cl
	}
	cl := rzp.NewClient(creds.KeyID, creds.KeySecret)
	c.clients[k] = cl
	return cl
}

func (c *Client) CreateOrder(ctx context.Context, creds *model.PaymentCredentials, amountMinor int64, currency, receipt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	body, err := c.client(creds).Order.Create(map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay create order: %w", err)
	}
	id, ok := body["id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("razorpay create order: missing id in response")
	}
	return id, nil
}

func (c *Client) VerifySignature(creds *model.PaymentCredentials, gatewayOrderID, paymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   gatewayOrderID,
		"razorpay_payment_id": paymentID,
	}
	return rzputils.VerifyPaymentSignature(params, signature, creds.KeySecret)
}
