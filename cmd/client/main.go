// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-ebics-client/internal/adapter"
	"github.com/MKhiriev/go-ebics-client/internal/client"
	"github.com/MKhiriev/go-ebics-client/internal/config"
	"github.com/MKhiriev/go-ebics-client/internal/crypto"
	"github.com/MKhiriev/go-ebics-client/internal/letters"
	"github.com/MKhiriev/go-ebics-client/internal/logger"
	"github.com/MKhiriev/go-ebics-client/internal/service"
	"github.com/MKhiriev/go-ebics-client/internal/store"
	"github.com/MKhiriev/go-ebics-client/internal/trace"
	"github.com/MKhiriev/go-ebics-client/internal/utils"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		overrides config.Overrides
		inv       client.Invocation
	)

	cmd := &cobra.Command{
		Use:           "ebics-client",
		Short:         "EBICS client: subscriber initialization and file transfer",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), overrides, inv, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&overrides.RootDir, "root", "", "client root directory (default ~/ebics/client)")
	cmd.Flags().StringVar(&overrides.ConfigFilePath, "config", "", "config file, JSON or YAML (default <root>/ebics.yaml)")
	client.BindFlags(cmd.Flags(), &inv)

	return cmd
}

func run(ctx context.Context, overrides config.Overrides, inv client.Invocation, out io.Writer) error {
	cfg, err := config.GetClientConfig(overrides)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("ebics-client", cfg.LogDir)
	ctx = log.WithContext(ctx)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, cfg.Session, log)
	if err != nil {
		return fmt.Errorf("create client storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	ids := utils.NewUUIDGenerator()
	traces := trace.NewManager(ids, log)
	bank := adapter.NewHTTPBankAdapter(cfg.Adapter, traces, ids, log)
	keyChain := crypto.NewKeyChainService()
	renderer := letters.NewRenderer(keyChain)

	services := service.NewClientServices(cfg.Session, storages, bank, keyChain, renderer, traces, log)
	app := client.NewApp(services, cfg, log)

	report, err := app.Run(ctx, inv)
	fmt.Fprint(out, report)
	if err != nil {
		log.Err(err).Msg("client run error")
	}
	return err
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
