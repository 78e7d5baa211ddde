package cmd

import (
	"github.com/spf13/cobra"

	"github.com/frahmantamala/asaas-go/internal/core/datamodel/apitypes"
	"github.com/frahmantamala/asaas-go/internal/core/datamodel/payment"
	"github.com/frahmantamala/asaas-go/internal/payments"
)

var (
	payCustomerID  string
	payBillingType string
	payValue       float64
	payDueDate     string
	payDescription string
)

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "Manage payments",
}

var paymentsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch one payment by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		result, err := deps.Payments.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var paymentsPixCmd = &cobra.Command{
	Use:   "pix-qrcode <id>",
	Short: "Fetch the PIX QR code for a payment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		result, err := deps.Payments.GetPixQRCode(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var paymentsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Charge a customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		// the API echoes only the customer id, so fetch the full record first
		cust, err := deps.Customers.Get(cmd.Context(), payCustomerID)
		if err != nil {
			return err
		}

		dueDate, err := apitypes.ParseDate(payDueDate)
		if err != nil {
			return err
		}

		req := payments.CreatePaymentRequest{
			Customer:    cust,
			BillingType: payment.BillingType(payBillingType),
			DueDate:     dueDate,
			Value:       &payValue,
		}
		if cmd.Flags().Changed("description") {
			req.Description = &payDescription
		}

		result, err := deps.Payments.Create(cmd.Context(), req)
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

func init() {
	paymentsCreateCmd.Flags().StringVar(&payCustomerID, "customer", "", "Customer id (required)")
	paymentsCreateCmd.Flags().StringVar(&payBillingType, "billing-type", string(payment.BillingTypeUndefined), "Billing type (BOLETO, CREDIT_CARD, PIX, ...)")
	paymentsCreateCmd.Flags().Float64Var(&payValue, "value", 0, "Charge value (required)")
	paymentsCreateCmd.Flags().StringVar(&payDueDate, "due-date", "", "Due date, YYYY-MM-DD (required)")
	paymentsCreateCmd.Flags().StringVar(&payDescription, "description", "", "Charge description")

	paymentsCmd.AddCommand(paymentsGetCmd)
	paymentsCmd.AddCommand(paymentsPixCmd)
	paymentsCmd.AddCommand(paymentsCreateCmd)
}
