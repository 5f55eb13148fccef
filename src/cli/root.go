// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/config"
	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/certbot"
	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/execx"
	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/inventory"
	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/present"
	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/renew"
	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/services"
	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/logger"
)

var (
	noColor      bool
	jsonOutput   bool
	listOnly     bool
	email        string
	certDir      string
	renewalDir   string
	certbotBin   string
	renewTimeout time.Duration
)

// Execute runs the root command, scanning the inventory and, unless told
// otherwise, starting the interactive renewal workflow.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	rootCmd := &cobra.Command{
		Use:           posix.GetExecutableName(),
		Short:         "TLS certificate inventory and renewal manager",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), log)
		},
	}

	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the inventory as JSON and exit")
	rootCmd.Flags().BoolVar(&listOnly, "list-only", false, "print the inventory and skip the renewal workflow")
	rootCmd.Flags().StringVar(&email, "email", "", "email for the renewal command (skips the prompt)")
	rootCmd.Flags().StringVar(&certDir, "cert-dir", "", "live certificate directory (default: /etc/letsencrypt/live)")
	rootCmd.Flags().StringVar(&renewalDir, "renewal-dir", "", "renewal configuration directory (default: /etc/letsencrypt/renewal)")
	rootCmd.Flags().StringVar(&certbotBin, "certbot", "", "certbot binary name or path")
	rootCmd.Flags().DurationVar(&renewTimeout, "timeout", 0, "renewal command timeout (default: 15m)")

	return rootCmd.ExecuteContext(ctx)
}

// run wires configuration, scans, presents, and hands off to the renewal
// orchestrator.
func run(ctx context.Context, log logger.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags override file configuration.
	if certDir != "" {
		cfg.Paths.LiveDir = certDir
	}
	if renewalDir != "" {
		cfg.Paths.RenewalDir = renewalDir
	}
	if certbotBin != "" {
		cfg.Paths.CertbotBin = certbotBin
	}
	timeout := time.Duration(cfg.Renewal.TimeoutSeconds) * time.Second
	if renewTimeout > 0 {
		timeout = renewTimeout
	}

	runner := execx.NewLocal()
	registry := certbot.NewClient(cfg.Paths.CertbotBin, runner)
	methods := &certbot.MethodResolver{
		RenewalDir: cfg.Paths.RenewalDir,
		LiveDir:    cfg.Paths.LiveDir,
	}
	scanner := inventory.NewScanner(registry, cfg.Paths.LiveDir, methods)

	records, err := scanner.Scan(ctx)
	if err != nil {
		return err
	}
	inventory.Sort(records)

	presenter := present.New(present.Options{
		Color:    present.ColorEnabled(noColor),
		WarnDays: cfg.Display.WarnDays,
	})

	if jsonOutput {
		// Status messages move to stderr as structured lines so stdout
		// stays a clean JSON document.
		jlog := logger.NewJSONLogger(os.Stderr)
		jlog.Printf("scanned %d certificates", len(records))

		data, err := presenter.RenderJSON(records)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	log.Printf("%s", presenter.RenderTable(records))

	if len(records) == 0 || listOnly {
		return nil
	}

	orchestrator := &renew.Orchestrator{
		Prompt: renew.SurveyPrompter{},
		Runner: runner,
		Services: &services.Manager{
			Runner:     runner,
			Candidates: cfg.Services,
		},
		Log:           log,
		CertbotBin:    cfg.Paths.CertbotBin,
		ACMEServer:    cfg.Renewal.ACMEServer,
		Email:         email,
		FallbackEmail: cfg.Renewal.Email,
		Timeout:       timeout,
	}

	return orchestrator.Run(ctx, records)
}
