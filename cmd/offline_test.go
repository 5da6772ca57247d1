package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDetermineCommand(t *testing.T) {
	payment := writeFile(t, "payment.json", `{"id":"pay-1","transactions":[{"id":"t1","type":"Charge","state":"Initial","amount":{"currencyCode":"EUR","centAmount":1000,"fractionDigits":2}}]}`)

	out, err := run(t, "determine", payment)
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"CreatePayment"}`, out)
}

func TestDetermineCommandInvariant(t *testing.T) {
	payment := writeFile(t, "payment.json", `{"id":"pay-1","transactions":[
		{"id":"t1","type":"Charge","state":"Initial"},
		{"id":"t2","type":"Charge","state":"Initial"}]}`)

	out, err := run(t, "determine", payment)
	require.Error(t, err)
	assert.JSONEq(t, `{"action":"NoAction","message":"Only one transaction can be in Initial state at any time."}`, out)
}

func TestReconcileCommand(t *testing.T) {
	payment := writeFile(t, "payment.json", `{"id":"pay-1","transactions":[{"id":"t1","type":"Charge","state":"Pending","interactionId":"tr_1"}]}`)
	pspPayment := writeFile(t, "psp.json", `{"id":"tr_1","status":"canceled","amount":{"currency":"EUR","value":"10.00"}}`)

	out, err := run(t, "reconcile", payment, pspPayment)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"action":"changeTransactionState","transactionId":"t1","state":"Failure"}]`, out)

	settled := writeFile(t, "settled.json", `{"id":"pay-1","transactions":[{"id":"t1","type":"Charge","state":"Failure","interactionId":"tr_1"}]}`)
	out, err = run(t, "reconcile", settled, pspPayment)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestCommandArgs(t *testing.T) {
	_, err := run(t, "reconcile", "only-one.json")
	assert.Error(t, err)

	_, err = run(t, "determine", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
