package models

import "time"

// UpdateAction is one instruction handed to the platform's "apply update
// actions to payment" endpoint. Order inside a slice is significant.
type UpdateAction interface {
	ActionName() string
}

const (
	ActionAddInterfaceInteraction        = "addInterfaceInteraction"
	ActionChangeTransactionInteractionID = "changeTransactionInteractionId"
	ActionChangeTransactionTimestamp     = "changeTransactionTimestamp"
	ActionChangeTransactionState         = "changeTransactionState"
	ActionSetTransactionCustomField      = "setTransactionCustomField"
	ActionAddTransaction                 = "addTransaction"
	ActionSetCustomField                 = "setCustomField"
)

type InterfaceInteractionFields struct {
	ID         string `json:"sctm_id"`
	ActionType string `json:"sctm_action_type"`
	CreatedAt  string `json:"sctm_created_at"`
	Request    string `json:"sctm_request"`
	Response   string `json:"sctm_response"`
}

type AddInterfaceInteraction struct {
	Action string                     `json:"action"`
	Type   TypeReference              `json:"type"`
	Fields InterfaceInteractionFields `json:"fields"`
}

func (a AddInterfaceInteraction) ActionName() string { return a.Action }

func NewAddInterfaceInteraction(fields InterfaceInteractionFields) AddInterfaceInteraction {
	return AddInterfaceInteraction{
		Action: ActionAddInterfaceInteraction,
		Type:   TypeReference{TypeID: "type", Key: InterfaceInteractionTypeKey},
		Fields: fields,
	}
}

type ChangeTransactionInteractionID struct {
	Action        string `json:"action"`
	TransactionID string `json:"transactionId"`
	InteractionID string `json:"interactionId"`
}

func (a ChangeTransactionInteractionID) ActionName() string { return a.Action }

func NewChangeTransactionInteractionID(transactionID, interactionID string) ChangeTransactionInteractionID {
	return ChangeTransactionInteractionID{
		Action:        ActionChangeTransactionInteractionID,
		TransactionID: transactionID,
		InteractionID: interactionID,
	}
}

type ChangeTransactionTimestamp struct {
	Action        string `json:"action"`
	TransactionID string `json:"transactionId"`
	Timestamp     string `json:"timestamp"`
}

func (a ChangeTransactionTimestamp) ActionName() string { return a.Action }

func NewChangeTransactionTimestamp(transactionID string, ts time.Time) ChangeTransactionTimestamp {
	return ChangeTransactionTimestamp{
		Action:        ActionChangeTransactionTimestamp,
		TransactionID: transactionID,
		Timestamp:     ts.UTC().Format(time.RFC3339),
	}
}

type ChangeTransactionState struct {
	Action        string           `json:"action"`
	TransactionID string           `json:"transactionId"`
	State         TransactionState `json:"state"`
}

func (a ChangeTransactionState) ActionName() string { return a.Action }

func NewChangeTransactionState(transactionID string, state TransactionState) ChangeTransactionState {
	return ChangeTransactionState{
		Action:        ActionChangeTransactionState,
		TransactionID: transactionID,
		State:         state,
	}
}

type SetTransactionCustomField struct {
	Action        string `json:"action"`
	TransactionID string `json:"transactionId"`
	Name          string `json:"name"`
	Value         any    `json:"value"`
}

func (a SetTransactionCustomField) ActionName() string { return a.Action }

func NewSetTransactionCustomField(transactionID, name string, value any) SetTransactionCustomField {
	return SetTransactionCustomField{
		Action:        ActionSetTransactionCustomField,
		TransactionID: transactionID,
		Name:          name,
		Value:         value,
	}
}

type TransactionDraft struct {
	Type          TransactionType  `json:"type"`
	Amount        Money            `json:"amount"`
	State         TransactionState `json:"state"`
	InteractionID string           `json:"interactionId,omitempty"`
	Timestamp     string           `json:"timestamp,omitempty"`
}

type AddTransaction struct {
	Action      string           `json:"action"`
	Transaction TransactionDraft `json:"transaction"`
}

func (a AddTransaction) ActionName() string { return a.Action }

func NewAddTransaction(draft TransactionDraft) AddTransaction {
	return AddTransaction{Action: ActionAddTransaction, Transaction: draft}
}

type SetCustomField struct {
	Action string `json:"action"`
	Name   string `json:"name"`
	Value  any    `json:"value"`
}

func (a SetCustomField) ActionName() string { return a.Action }

func NewSetCustomField(name string, value any) SetCustomField {
	return SetCustomField{Action: ActionSetCustomField, Name: name, Value: value}
}
