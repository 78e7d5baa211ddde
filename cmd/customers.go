package cmd

import (
	"github.com/spf13/cobra"

	"github.com/frahmantamala/asaas-go/internal/customers"
)

var (
	listName              string
	listEmail             string
	listCpfCnpj           string
	listGroupName         string
	listExternalReference string
	listOffset            int
	listLimit             int

	createName              string
	createCpfCnpj           string
	createEmail             string
	createPhone             string
	createMobilePhone       string
	createExternalReference string
)

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Manage customers",
}

var customersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customers matching the given filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		opts := customers.ListOptions{}
		if cmd.Flags().Changed("name") {
			opts.Name = &listName
		}
		if cmd.Flags().Changed("email") {
			opts.Email = &listEmail
		}
		if cmd.Flags().Changed("cpf-cnpj") {
			opts.CpfCnpj = &listCpfCnpj
		}
		if cmd.Flags().Changed("group-name") {
			opts.GroupName = &listGroupName
		}
		if cmd.Flags().Changed("external-reference") {
			opts.ExternalReference = &listExternalReference
		}
		if cmd.Flags().Changed("offset") {
			opts.Offset = &listOffset
		}
		if cmd.Flags().Changed("limit") {
			opts.Limit = &listLimit
		}

		result, err := deps.Customers.List(cmd.Context(), opts)
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var customersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch one customer by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		result, err := deps.Customers.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

var customersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new customer",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := initializeDependencies()
		if err != nil {
			return err
		}

		req := customers.CreateCustomerRequest{
			Name:    createName,
			CpfCnpj: createCpfCnpj,
		}
		if cmd.Flags().Changed("email") {
			req.Email = &createEmail
		}
		if cmd.Flags().Changed("phone") {
			req.Phone = &createPhone
		}
		if cmd.Flags().Changed("mobile-phone") {
			req.MobilePhone = &createMobilePhone
		}
		if cmd.Flags().Changed("external-reference") {
			req.ExternalReference = &createExternalReference
		}

		result, err := deps.Customers.Create(cmd.Context(), req)
		if err != nil {
			return err
		}
		return printJSON(result)
	},
}

func init() {
	customersListCmd.Flags().StringVar(&listName, "name", "", "Filter by name")
	customersListCmd.Flags().StringVar(&listEmail, "email", "", "Filter by email")
	customersListCmd.Flags().StringVar(&listCpfCnpj, "cpf-cnpj", "", "Filter by CPF/CNPJ")
	customersListCmd.Flags().StringVar(&listGroupName, "group-name", "", "Filter by group name")
	customersListCmd.Flags().StringVar(&listExternalReference, "external-reference", "", "Filter by external reference")
	customersListCmd.Flags().IntVar(&listOffset, "offset", 0, "Pagination offset")
	customersListCmd.Flags().IntVar(&listLimit, "limit", 0, "Page size")

	customersCreateCmd.Flags().StringVar(&createName, "name", "", "Customer name (required)")
	customersCreateCmd.Flags().StringVar(&createCpfCnpj, "cpf-cnpj", "", "Customer CPF/CNPJ (required)")
	customersCreateCmd.Flags().StringVar(&createEmail, "email", "", "Customer email")
	customersCreateCmd.Flags().StringVar(&createPhone, "phone", "", "Customer phone")
	customersCreateCmd.Flags().StringVar(&createMobilePhone, "mobile-phone", "", "Customer mobile phone")
	customersCreateCmd.Flags().StringVar(&createExternalReference, "external-reference", "", "External reference")

	customersCmd.AddCommand(customersListCmd)
	customersCmd.AddCommand(customersGetCmd)
	customersCmd.AddCommand(customersCreateCmd)
}
