package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akylbek/payment-system/psp-connector/internal/apperr"
	"github.com/akylbek/payment-system/psp-connector/internal/interfaces/mocks"
	"github.com/akylbek/payment-system/psp-connector/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeProcessor struct {
	actions []models.UpdateAction
	err     error
	gotReq  models.ExtensionRequest
	gotID   string
}

func (f *fakeProcessor) HandleExtension(_ context.Context, req models.ExtensionRequest) ([]models.UpdateAction, error) {
	f.gotReq = req
	return f.actions, f.err
}

func (f *fakeProcessor) HandleNotification(_ context.Context, id string) error {
	f.gotID = id
	return f.err
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func extensionRouter(p *fakeProcessor) *gin.Engine {
	r := gin.New()
	r.POST("/extensions", NewExtensionHandler(p).Handle)
	return r
}

const extensionBody = `{"action":"Update","resource":{"typeId":"payment","id":"pay-1","obj":{"id":"pay-1","transactions":[]}}}`

func TestExtensionHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		actions    []models.UpdateAction
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "actions",
			body:       extensionBody,
			actions:    []models.UpdateAction{models.NewChangeTransactionState("t1", models.StatePending)},
			wantStatus: http.StatusOK,
			wantBody:   `{"actions":[{"action":"changeTransactionState","transactionId":"t1","state":"Pending"}]}`,
		},
		{
			name:       "no action",
			body:       extensionBody,
			wantStatus: http.StatusOK,
			wantBody:   `{"actions":[]}`,
		},
		{
			name:       "skipped",
			body:       extensionBody,
			err:        apperr.SkipErr("resource type cart is not handled"),
			wantStatus: http.StatusOK,
			wantBody:   `{"actions":[]}`,
		},
		{
			name:       "invalid",
			body:       extensionBody,
			err:        apperr.InvalidErr(apperr.CodeInvalidOperation, "Only one transaction can be in Initial state at any time."),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":[{"code":"InvalidOperation","message":"Only one transaction can be in Initial state at any time."}]}`,
		},
		{
			name:       "internal",
			body:       extensionBody,
			err:        apperr.Wrap(assert.AnError, "PSP createPayment request failed"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"errors":[{"code":"General","message":"internal error"}]}`,
		},
		{
			name:       "malformed body",
			body:       `{"resource":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"errors":[{"code":"InvalidInput","message":"invalid request body"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakeProcessor{actions: tt.actions, err: tt.err}
			req := httptest.NewRequest(http.MethodPost, "/extensions", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			w := serve(extensionRouter(p), req)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestExtensionHandlerPassesResource(t *testing.T) {
	p := &fakeProcessor{}
	req := httptest.NewRequest(http.MethodPost, "/extensions", strings.NewReader(extensionBody))
	req.Header.Set("Content-Type", "application/json")

	serve(extensionRouter(p), req)
	assert.Equal(t, "payment", p.gotReq.Resource.TypeID)
	assert.JSONEq(t, `{"id":"pay-1","transactions":[]}`, string(p.gotReq.Resource.Obj))
}

func TestWebhookHandler(t *testing.T) {
	tests := []struct {
		name            string
		form            url.Values
		err             error
		wantStatus      int
		wantStatusField string
	}{
		{name: "processed", form: url.Values{"id": {"tr_1"}}, wantStatus: http.StatusOK, wantStatusField: "processed"},
		{name: "skipped", form: url.Values{"id": {"ord_1"}}, err: apperr.SkipErr("not a payment"), wantStatus: http.StatusOK, wantStatusField: "skipped"},
		{name: "not found", form: url.Values{"id": {"tr_2"}}, err: apperr.NotFoundErr("no ctPaymentId"), wantStatus: http.StatusBadRequest},
		{name: "platform down", form: url.Values{"id": {"tr_3"}}, err: apperr.Wrap(assert.AnError, "platform request failed"), wantStatus: http.StatusInternalServerError},
		{name: "missing id", form: url.Values{}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fakeProcessor{err: tt.err}
			r := gin.New()
			r.POST("/webhooks", NewWebhookHandler(p).Handle)

			req := httptest.NewRequest(http.MethodPost, "/webhooks", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			w := serve(r, req)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatusField != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.wantStatusField, body["status"])
				assert.Equal(t, tt.form.Get("id"), p.gotID)
			}
		})
	}
}

func TestActionLogHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockActionLogRepository(ctrl)

	r := gin.New()
	r.GET("/payments/:id/actions", NewActionLogHandler(repo).ListActions)

	created := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	repo.EXPECT().ListByPaymentID(gomock.Any(), "pay-1", 10).Return([]models.ActionRecord{{
		ID:           7,
		PaymentID:    "pay-1",
		Source:       models.SourceExtension,
		Action:       "CreatePayment",
		Instructions: json.RawMessage(`[]`),
		CreatedAt:    created,
	}}, nil)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/payments/pay-1/actions?limit=10", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"payment_id":"pay-1","actions":[{"id":7,"payment_id":"pay-1","source":"extension",
		"action":"CreatePayment","instructions":[],"created_at":"2024-06-01T09:30:00Z"}]}`, w.Body.String())

	w = serve(r, httptest.NewRequest(http.MethodGet, "/payments/pay-1/actions?limit=abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	repo.EXPECT().ListByPaymentID(gomock.Any(), "pay-2", 0).Return(nil, assert.AnError)
	w = serve(r, httptest.NewRequest(http.MethodGet, "/payments/pay-2/actions", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
