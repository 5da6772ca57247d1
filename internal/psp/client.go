// Package psp is a thin client for the PSP's REST API.
package psp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/akylbek/payment-system/psp-connector/internal/apperr"
	"github.com/akylbek/payment-system/psp-connector/internal/models"
	"github.com/akylbek/payment-system/psp-connector/internal/telemetry"
)

type Client struct {
	baseURL   string
	apiKey    string
	profileID string
	http      *http.Client
}

func NewClient(baseURL, apiKey, profileID string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		profileID: profileID,
		http:      httpClient,
	}
}

// apiError is the PSP's problem-details error body.
type apiError struct {
	Status int    `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Field  string `json:"field,omitempty"`
}

func (c *Client) CreatePayment(ctx context.Context, params models.CreatePaymentParams) (*models.PSPPayment, error) {
	var p models.PSPPayment
	if err := c.do(ctx, "createPayment", http.MethodPost, "/payments", nil, params, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) GetPayment(ctx context.Context, id string) (*models.PSPPayment, error) {
	var p models.PSPPayment
	q := url.Values{"embed": {"refunds"}}
	if err := c.do(ctx, "getPayment", http.MethodGet, "/payments/"+url.PathEscape(id), q, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CancelPayment(ctx context.Context, id string) (*models.PSPPayment, error) {
	var p models.PSPPayment
	if err := c.do(ctx, "cancelPayment", http.MethodDelete, "/payments/"+url.PathEscape(id), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateRefund(ctx context.Context, paymentID string, params models.CreateRefundParams) (*models.PSPRefund, error) {
	var r models.PSPRefund
	path := fmt.Sprintf("/payments/%s/refunds", url.PathEscape(paymentID))
	if err := c.do(ctx, "createRefund", http.MethodPost, path, nil, params, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) GetRefund(ctx context.Context, paymentID, refundID string) (*models.PSPRefund, error) {
	var r models.PSPRefund
	path := fmt.Sprintf("/payments/%s/refunds/%s", url.PathEscape(paymentID), url.PathEscape(refundID))
	if err := c.do(ctx, "getRefund", http.MethodGet, path, nil, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) CancelRefund(ctx context.Context, paymentID, refundID string) error {
	path := fmt.Sprintf("/payments/%s/refunds/%s", url.PathEscape(paymentID), url.PathEscape(refundID))
	return c.do(ctx, "cancelRefund", http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) CreateCapture(ctx context.Context, paymentID string, params models.CreateCaptureParams) (*models.PSPCapture, error) {
	var capture models.PSPCapture
	path := fmt.Sprintf("/payments/%s/captures", url.PathEscape(paymentID))
	if err := c.do(ctx, "createCapture", http.MethodPost, path, nil, params, &capture); err != nil {
		return nil, err
	}
	return &capture, nil
}

func (c *Client) ListMethods(ctx context.Context, params models.ListMethodsParams) ([]models.PSPMethod, error) {
	q := url.Values{}
	setIf(q, "locale", params.Locale)
	setIf(q, "billingCountry", params.BillingCountry)
	setIf(q, "includeWallets", params.IncludeWallets)
	setIf(q, "sequenceType", params.SequenceType)
	setIf(q, "profileId", c.profileID)
	if params.Amount != nil {
		q.Set("amount[value]", params.Amount.Value)
		q.Set("amount[currency]", params.Amount.Currency)
	}

	var resp struct {
		Count    int `json:"count"`
		Embedded struct {
			Methods []models.PSPMethod `json:"methods"`
		} `json:"_embedded"`
	}
	if err := c.do(ctx, "listMethods", http.MethodGet, "/methods", q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Embedded.Methods, nil
}

func (c *Client) RequestApplePaySession(ctx context.Context, params models.ApplePaySessionParams) (models.ApplePaySession, error) {
	body := struct {
		models.ApplePaySessionParams
		ProfileID string `json:"profileId,omitempty"`
	}{params, c.profileID}

	var session json.RawMessage
	if err := c.do(ctx, "applePaySession", http.MethodPost, "/wallets/applepay/sessions", nil, body, &session); err != nil {
		return nil, err
	}
	return models.ApplePaySession(session), nil
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) (err error) {
	ctx, span := telemetry.Tracer.Start(ctx, "psp."+op)
	start := time.Now()
	status := 0
	defer func() {
		telemetry.PSPRequestDuration.WithLabelValues(op, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
		telemetry.EndSpan(span, err)
	}()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/hal+json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperr.Wrap(err, fmt.Sprintf("PSP %s request failed", op))
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperr.Wrap(err, fmt.Sprintf("read PSP %s response", op))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return responseError(op, resp.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperr.Wrap(err, fmt.Sprintf("decode PSP %s response", op))
	}
	return nil
}

func responseError(op string, status int, data []byte) error {
	var e apiError
	_ = json.Unmarshal(data, &e)
	detail := e.Detail
	if detail == "" {
		detail = http.StatusText(status)
	}
	msg := fmt.Sprintf("PSP %s: %s", op, detail)

	switch {
	case status == http.StatusNotFound:
		return apperr.NotFoundErr(msg)
	case status == http.StatusUnprocessableEntity || status == http.StatusBadRequest:
		return apperr.InvalidErr(apperr.CodeInvalidInput, msg)
	case status < http.StatusInternalServerError:
		return apperr.InvalidErr(apperr.CodeInvalidOperation, msg)
	default:
		return &apperr.AppError{
			Kind:    apperr.Internal,
			Code:    apperr.CodeGeneral,
			Message: msg,
			Err:     fmt.Errorf("status %d", status),
		}
	}
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
