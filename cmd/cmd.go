package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/frahmantamala/asaas-go/internal"
	"github.com/frahmantamala/asaas-go/internal/asaas"
	"github.com/frahmantamala/asaas-go/internal/customers"
	"github.com/frahmantamala/asaas-go/internal/payments"
	"github.com/frahmantamala/asaas-go/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "asaas",
	Short: "Asaas API client",
	Long:  `Command line client for the Asaas v3 payment API: customers, payments and PIX QR codes.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*internal.Config, error) {
	// .env support for local development; missing files are fine
	_ = godotenv.Load()

	if os.Getenv("ASAAS_ACCESS_TOKEN") != "" {
		cfg := internal.LoadConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("error validating config from environment: %w", err)
		}
		return cfg, nil
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix("ASAAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg internal.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("error validating config: %w", err)
	}

	return &cfg, nil
}

type Dependencies struct {
	Config    *internal.Config
	Logger    *slog.Logger
	Customers *customers.Service
	Payments  *payments.Service
}

func initializeDependencies() (*Dependencies, error) {
	cfg, err := loadConfig(".")
	if err != nil {
		return nil, err
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	log := logger.LoggerWrapper()

	gateway := asaas.NewClient(cfg.API, log)

	return &Dependencies{
		Config:    cfg,
		Logger:    log,
		Customers: customers.NewService(gateway, log),
		Payments:  payments.NewService(gateway, log),
	}, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func init() {
	rootCmd.AddCommand(customersCmd)
	rootCmd.AddCommand(paymentsCmd)
}
