package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/akylbek/payment-system/psp-connector/internal/engine"
	"github.com/akylbek/payment-system/psp-connector/internal/models"
	"github.com/akylbek/payment-system/psp-connector/internal/service"
)

type determineOutput struct {
	Action  string `json:"action"`
	Message string `json:"message,omitempty"`
}

func determineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "determine [payment.json]",
		Short: "Print the next action for a payment snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var payment models.Payment
			if err := readJSON(args[0], &payment); err != nil {
				return err
			}

			determined, err := engine.DetermineAction(&payment)
			if werr := writeJSON(cmd.OutOrStdout(), determineOutput{
				Action:  determined.Action.String(),
				Message: determined.Message,
			}); werr != nil {
				return werr
			}
			return err
		},
	}
}

func reconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile [payment.json] [psp-payment.json]",
		Short: "Print the update actions a PSP payment implies for a payment snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var payment models.Payment
			if err := readJSON(args[0], &payment); err != nil {
				return err
			}
			var pspPayment models.PSPPayment
			if err := readJSON(args[1], &pspPayment); err != nil {
				return err
			}

			actions, err := service.Reconcile(&payment, pspPayment)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), actions)
		},
	}
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
