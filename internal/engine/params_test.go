package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akylbek/payment-system/psp-connector/internal/apperr"
	"github.com/akylbek/payment-system/psp-connector/internal/models"
)

func TestBuildCreatePaymentParams(t *testing.T) {
	tx := newTx("c1", models.TransactionTypeCharge, models.StateInitial, withAmount(1999))

	t.Run("issuer and metadata", func(t *testing.T) {
		p := newPayment(tx)
		p.PaymentMethodInfo.Method = "ideal,ideal_ABNANL2A"
		withPaymentField(p, models.FieldCreatePaymentRequest, `{"redirectUrl":"https://shop.example/return","locale":"nl_NL","metadata":{"cartId":"cart-9"}}`)

		got, err := BuildCreatePaymentParams(p, tx, Options{WebhookURL: "https://connector.example/webhooks"})
		require.NoError(t, err)
		assert.Equal(t, models.PSPAmount{Currency: "EUR", Value: "19.99"}, got.Amount)
		assert.Equal(t, "ideal", got.Method)
		assert.Equal(t, "ideal_ABNANL2A", got.Issuer)
		assert.Equal(t, "https://connector.example/webhooks", got.WebhookURL)
		assert.Equal(t, "Payment pay-1", got.Description)
		assert.Empty(t, got.CaptureMode)
		assert.Equal(t, map[string]string{
			"cartId":                     "cart-9",
			models.MetadataPaymentID:     "pay-1",
			models.MetadataTransactionID: "c1",
		}, got.Metadata)
	})

	t.Run("pay later captures manually", func(t *testing.T) {
		p := newPayment(tx)
		p.PaymentMethodInfo.Method = "klarnapaylater"
		withPaymentField(p, models.FieldCreatePaymentRequest, `{"redirectUrl":"https://shop.example/return"}`)

		got, err := BuildCreatePaymentParams(p, tx, Options{})
		require.NoError(t, err)
		assert.Equal(t, "manual", got.CaptureMode)
	})

	t.Run("card component requires token", func(t *testing.T) {
		p := newPayment(tx)
		p.PaymentMethodInfo.Method = "creditcard"
		withPaymentField(p, models.FieldCreatePaymentRequest, `{"redirectUrl":"https://shop.example/return"}`)

		_, err := BuildCreatePaymentParams(p, tx, Options{CardComponentEnabled: true})
		require.Error(t, err)
		assert.True(t, apperr.IsKind(err, apperr.Invalid))

		got, err := BuildCreatePaymentParams(p, tx, Options{CardComponentEnabled: false})
		require.NoError(t, err)
		assert.Empty(t, got.CardToken)
	})

	t.Run("card token passed through", func(t *testing.T) {
		p := newPayment(tx)
		p.PaymentMethodInfo.Method = "creditcard"
		withPaymentField(p, models.FieldCreatePaymentRequest, `{"redirectUrl":"https://shop.example/return","cardToken":"tkn_1"}`)

		got, err := BuildCreatePaymentParams(p, tx, Options{CardComponentEnabled: true})
		require.NoError(t, err)
		assert.Equal(t, "tkn_1", got.CardToken)
	})

	t.Run("missing request", func(t *testing.T) {
		_, err := BuildCreatePaymentParams(newPayment(tx), tx, Options{})
		require.Error(t, err)
		ae, _ := apperr.As(err)
		assert.Contains(t, ae.Message, models.FieldCreatePaymentRequest)
		assert.Contains(t, ae.Message, "pay-1")
	})

	t.Run("unparsable request", func(t *testing.T) {
		p := withPaymentField(newPayment(tx), models.FieldCreatePaymentRequest, `{"redirectUrl":`)
		_, err := BuildCreatePaymentParams(p, tx, Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("redirect url must be a url", func(t *testing.T) {
		p := withPaymentField(newPayment(tx), models.FieldCreatePaymentRequest, `{"redirectUrl":"nope"}`)
		_, err := BuildCreatePaymentParams(p, tx, Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid")
	})
}

func TestBuildListMethodsParams(t *testing.T) {
	p := withPaymentField(newPayment(), models.FieldPaymentMethodsRequest, `{"locale":"de_DE","billingCountry":"DE","sequenceType":"oneoff"}`)
	got, err := BuildListMethodsParams(p)
	require.NoError(t, err)
	assert.Equal(t, "de_DE", got.Locale)
	assert.Equal(t, "DE", got.BillingCountry)
	require.NotNil(t, got.Amount)
	assert.Equal(t, "10.00", got.Amount.Value)

	empty := withPaymentField(newPayment(), models.FieldPaymentMethodsRequest, "")
	got, err = BuildListMethodsParams(empty)
	require.NoError(t, err)
	assert.Empty(t, got.Locale)

	bad := withPaymentField(newPayment(), models.FieldPaymentMethodsRequest, `{"sequenceType":"sometimes"}`)
	_, err = BuildListMethodsParams(bad)
	assert.Error(t, err)
}

func TestBuildApplePaySessionParams(t *testing.T) {
	p := withPaymentField(newPayment(), models.FieldApplePaySessionRequest, `{"validationUrl":"https://apple-pay-gateway.apple.com/paymentservices/paymentSession","domain":"shop.example"}`)
	got, err := BuildApplePaySessionParams(p)
	require.NoError(t, err)
	assert.Equal(t, "shop.example", got.Domain)

	missingDomain := withPaymentField(newPayment(), models.FieldApplePaySessionRequest, `{"validationUrl":"https://apple.example"}`)
	_, err = BuildApplePaySessionParams(missingDomain)
	assert.Error(t, err)
}

func TestCaptureTarget(t *testing.T) {
	auth := newTx("a1", models.TransactionTypeAuthorization, models.StateSuccess, withInteraction("tr_1"))
	pending := newTx("c1", models.TransactionTypeCharge, models.StatePending, withField(models.FieldCapturePayment, true))
	failedMarked := newTx("c2", models.TransactionTypeCharge, models.StateFailure, withField(models.FieldCapturePayment, true))
	failedUnmarked := newTx("c3", models.TransactionTypeCharge, models.StateFailure, withField(models.FieldCaptureErrors, `["x"]`))

	g := Classify([]models.Transaction{auth, failedMarked, pending})
	tx, ok := CaptureTarget(g)
	require.True(t, ok)
	assert.Equal(t, "c1", tx.ID)
	assert.Equal(t, "tr_1", CapturePaymentID(g, tx))

	g = Classify([]models.Transaction{auth, failedUnmarked, failedMarked})
	tx, ok = CaptureTarget(g)
	require.True(t, ok)
	assert.Equal(t, "c2", tx.ID)

	g = Classify([]models.Transaction{auth, failedUnmarked})
	_, ok = CaptureTarget(g)
	assert.False(t, ok)
}
