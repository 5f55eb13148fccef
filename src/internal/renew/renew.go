// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package renew

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/execx"
	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/inventory"
	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/services"
	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/logger"
)

// DefaultACMEServer is the production Let's Encrypt endpoint the renewal
// command always targets.
const DefaultACMEServer = "https://acme-v02.api.letsencrypt.org/directory"

// DefaultTimeout bounds the renewal command. The manual DNS challenge flow
// legitimately takes minutes while the operator creates records, so this is
// generous; it exists to stop an abandoned run from hanging forever.
const DefaultTimeout = 15 * time.Minute

// EmailEnvVar supplies the default notification email for the renewal
// command; an interactive answer still wins over it.
const EmailEnvVar = "CERTBOT_EMAIL"

// FallbackEmail is used when neither flag, environment, nor prompt provide
// an address.
const FallbackEmail = "admin@localhost"

// CommandError reports a renewal command that ran and exited nonzero.
type CommandError struct {
	// ExitCode is the renewal command's exit status.
	ExitCode int
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return fmt.Sprintf("renew: renewal command exited %d", e.ExitCode)
}

// BuildArgs constructs the certbot argument vector for a manual
// DNS-challenge renewal. The result is passed to the process API as-is;
// nothing is ever joined into a shell string for execution.
func BuildArgs(email, domain, server string) []string {
	if server == "" {
		server = DefaultACMEServer
	}
	return []string{
		"certonly",
		"--manual",
		"--preferred-challenges", "dns",
		"--email", email,
		"--server", server,
		"-d", domain,
	}
}

// Orchestrator runs the interactive renewal workflow over a scanned record
// list.
type Orchestrator struct {
	// Prompt collects the operator's answers.
	Prompt Prompter
	// Runner executes the renewal command.
	Runner execx.Runner
	// Services reloads web servers after a successful renewal; nil skips
	// the reload step entirely.
	Services *services.Manager
	// Log receives user-facing status output.
	Log logger.Logger

	// CertbotBin is the renewal binary; defaults to "certbot".
	CertbotBin string
	// ACMEServer overrides the ACME endpoint; defaults to DefaultACMEServer.
	ACMEServer string
	// Email, when set (e.g. from a flag), skips the email prompt.
	Email string
	// FallbackEmail seeds the prompt default when the environment has none.
	FallbackEmail string
	// Timeout bounds the renewal command; defaults to DefaultTimeout.
	Timeout time.Duration
}

// Run executes the workflow: select, resolve email and domain form, build
// the command, confirm, execute, and offer reloads.
//
// Declined confirmations and invalid selections are terminal but not
// errors; the only error of interest to callers is *CommandError, which
// maps to a nonzero process exit.
func (o *Orchestrator) Run(ctx context.Context, records []inventory.Record) error {
	if len(records) == 0 {
		return nil
	}

	rec, ok, err := o.selectRecord(records)
	if err != nil || !ok {
		return err
	}

	email, err := o.resolveEmail()
	if err != nil {
		return err
	}

	domain, err := o.resolveDomain(rec.Domain)
	if err != nil {
		return err
	}

	bin := o.CertbotBin
	if bin == "" {
		bin = "certbot"
	}
	args := BuildArgs(email, domain, o.ACMEServer)
	command := bin + " " + strings.Join(args, " ")

	o.Log.Println()
	o.Log.Printf("Renewal command:\n  %s", command)

	confirmed, err := o.Prompt.Confirm("Run this command now?", true)
	if err != nil {
		return err
	}
	if !confirmed {
		o.Log.Println("Not running anything. To renew manually, run:")
		o.Log.Printf("  %s", command)
		return nil
	}

	timeout := o.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	exitCode, err := o.Runner.RunInteractive(runCtx, bin, args...)
	if err != nil {
		return fmt.Errorf("renew: running %s: %w", bin, err)
	}
	if exitCode != 0 {
		o.Log.Printf("Renewal failed: %s exited with code %d.", bin, exitCode)
		o.Log.Println("No services were reloaded. Fix the issue and rerun, or renew manually with the command above.")
		return &CommandError{ExitCode: exitCode}
	}

	o.Log.Printf("Renewal of %s succeeded.", domain)
	return o.offerReloads(ctx)
}

// selectRecord runs the selection step. A non-numeric or out-of-range
// answer is terminal: the workflow prints a message and ends without
// retrying.
func (o *Orchestrator) selectRecord(records []inventory.Record) (inventory.Record, bool, error) {
	msg := fmt.Sprintf("Select a certificate to renew [1-%d]", len(records))
	answer, err := o.Prompt.Input(msg, "")
	if err != nil {
		return inventory.Record{}, false, err
	}

	n, convErr := strconv.Atoi(strings.TrimSpace(answer))
	if convErr != nil || n < 1 || n > len(records) {
		o.Log.Printf("Invalid selection %q. Nothing renewed.", strings.TrimSpace(answer))
		return inventory.Record{}, false, nil
	}

	return records[n-1], true, nil
}

// resolveEmail resolves the notification email. Precedence: a pre-set
// Email (flag), then the interactive answer, then the environment default,
// then the fallback identity. The prompt's default is the best non-
// interactive candidate, so an empty answer accepts it.
func (o *Orchestrator) resolveEmail() (string, error) {
	if o.Email != "" {
		return o.Email, nil
	}

	def := os.Getenv(EmailEnvVar)
	if def == "" {
		def = o.FallbackEmail
	}
	if def == "" {
		def = FallbackEmail
	}

	answer, err := o.Prompt.Input("Email for renewal notices", def)
	if err != nil {
		return "", err
	}
	if answer = strings.TrimSpace(answer); answer != "" {
		return answer, nil
	}
	return def, nil
}

// resolveDomain handles the wildcard choice. Registry entries store
// wildcard lineages with the leading "*." marker; the operator picks
// between the bare parent domain and the wildcard form. Non-wildcard
// domains pass through untouched.
func (o *Orchestrator) resolveDomain(domain string) (string, error) {
	if !strings.HasPrefix(domain, "*.") {
		return domain, nil
	}

	parent := strings.TrimPrefix(domain, "*.")
	wildcard := "*." + parent

	options := []string{parent, wildcard}
	idx, err := o.Prompt.Select("This entry is a wildcard. Which form should the renewal cover?", options)
	if err != nil {
		return "", err
	}
	return options[idx], nil
}

// offerReloads detects running web servers and offers to reload each one.
// Per-service failures are reported and never stop the remaining servers.
func (o *Orchestrator) offerReloads(ctx context.Context) error {
	if o.Services == nil {
		return nil
	}

	running := o.Services.Running(ctx)
	if len(running) == 0 {
		o.Log.Println("No web servers detected running; nothing to reload.")
		return nil
	}

	for _, name := range running {
		confirmed, err := o.Prompt.Confirm(fmt.Sprintf("Reload %s to pick up the new certificate?", name), true)
		if err != nil {
			return err
		}
		if !confirmed {
			o.Log.Printf("Skipped %s.", name)
			continue
		}

		if err := o.Services.Reload(ctx, name); err != nil {
			o.Log.Printf("Reload of %s failed: %v. Remaining services will still be attempted.", name, err)
			continue
		}
		o.Log.Printf("Reloaded %s.", name)
	}

	return nil
}
