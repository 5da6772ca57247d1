// Package platform talks to the commerce platform's payment API over NATS
// request/reply.
package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/akylbek/payment-system/psp-connector/internal/apperr"
	"github.com/akylbek/payment-system/psp-connector/internal/models"
)

const (
	SubjectGetPayment    = "platform.payments.get"
	SubjectUpdatePayment = "platform.payments.update"
)

// Requester is the slice of *nats.Conn the client uses.
type Requester interface {
	RequestWithContext(ctx context.Context, subj string, data []byte) (*nats.Msg, error)
}

type Client struct {
	nc      Requester
	timeout time.Duration
}

func NewClient(nc Requester, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{nc: nc, timeout: timeout}
}

type getPaymentRequest struct {
	ID string `json:"id"`
}

type updatePaymentRequest struct {
	ID      string                `json:"id"`
	Version int64                 `json:"version"`
	Actions []models.UpdateAction `json:"actions"`
}

type reply struct {
	Payment *models.Payment   `json:"payment,omitempty"`
	Error   *apperr.ErrorBody `json:"error,omitempty"`
}

func (c *Client) GetPaymentByID(ctx context.Context, id string) (*models.Payment, error) {
	return c.request(ctx, SubjectGetPayment, getPaymentRequest{ID: id})
}

// UpdatePayment sends the instructions against the snapshot's version; the
// platform rejects them if the payment moved on in between.
func (c *Client) UpdatePayment(ctx context.Context, payment *models.Payment, actions []models.UpdateAction) (*models.Payment, error) {
	if payment == nil {
		return nil, apperr.InvalidErr(apperr.CodeInvalidInput, "cannot update a nil payment")
	}
	return c.request(ctx, SubjectUpdatePayment, updatePaymentRequest{
		ID:      payment.ID,
		Version: payment.Version,
		Actions: actions,
	})
}

func (c *Client) request(ctx context.Context, subject string, body any) (*models.Payment, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", subject, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	msg, err := c.nc.RequestWithContext(ctx, subject, data)
	if err != nil {
		return nil, apperr.Wrap(err, fmt.Sprintf("platform request %s failed", subject))
	}

	var r reply
	if err := json.Unmarshal(msg.Data, &r); err != nil {
		return nil, apperr.Wrap(err, fmt.Sprintf("platform reply on %s is malformed", subject))
	}
	if r.Error != nil {
		return nil, replyError(*r.Error)
	}
	if r.Payment == nil {
		return nil, apperr.NotFoundErr(fmt.Sprintf("platform returned no payment on %s", subject))
	}
	return r.Payment, nil
}

func replyError(body apperr.ErrorBody) error {
	switch body.Code {
	case apperr.CodeObjectNotFound:
		return apperr.NotFoundErr(body.Message)
	case apperr.CodeInvalidInput, apperr.CodeInvalidOperation:
		return apperr.InvalidErr(body.Code, body.Message)
	default:
		return &apperr.AppError{
			Kind:    apperr.Internal,
			Code:    apperr.CodeGeneral,
			Message: fmt.Sprintf("platform error %s", body.Code),
			Err:     fmt.Errorf("%s", body.Message),
		}
	}
}
