// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package inventory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/certbot"
	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/certs"
	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/helper/gc"
)

// Lister enumerates the renewal registry.
type Lister interface {
	List(ctx context.Context) ([]certbot.Entry, error)
}

// MethodResolver maps a certificate name to its renewal method label.
type MethodResolver interface {
	Resolve(name string) string
}

// certFileNames are tried in order inside each live subdirectory.
// certbot writes both; older trees sometimes carry only the full chain.
var certFileNames = []string{"cert.pem", "fullchain.pem"}

// Scanner builds the certificate inventory from the registry and the
// live-certificate directory.
type Scanner struct {
	// Registry enumerates managed certificates; nil disables the pass.
	Registry Lister
	// LiveDir is the live-certificate directory (one subdirectory per name).
	LiveDir string
	// Methods resolves renewal method labels.
	Methods MethodResolver
	// Decoder parses certificate material found on disk.
	Decoder *certs.Decoder
	// Now supplies the scan timestamp; defaults to time.Now.
	Now func() time.Time
}

// NewScanner creates a Scanner over the given registry and live directory.
func NewScanner(registry Lister, liveDir string, methods MethodResolver) *Scanner {
	return &Scanner{
		Registry: registry,
		LiveDir:  liveDir,
		Methods:  methods,
		Decoder:  certs.New(),
		Now:      time.Now,
	}
}

// Scan produces the deduplicated, classified record set.
//
// The registry pass runs first; a missing registry tool degrades to the
// filesystem pass alone. The filesystem pass then adds every certificate
// whose name the registry didn't produce — on a name collision the registry
// entry stands and the filesystem entry is skipped, never merged.
// Unreadable or unparsable certificate files are skipped without a record.
//
// Returns:
//   - []Record: Unsorted records; callers order them with Sort
//   - error: Only for registry failures other than tool absence
func (s *Scanner) Scan(ctx context.Context) ([]Record, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	var records []Record
	seen := make(map[string]struct{})

	if s.Registry != nil {
		entries, err := s.Registry.List(ctx)
		switch {
		case errors.Is(err, certbot.ErrToolUnavailable):
			// Degrade to the filesystem pass.
		case err != nil:
			return nil, err
		default:
			for _, e := range entries {
				if e.Name == "" {
					continue
				}
				if _, dup := seen[e.Name]; dup {
					continue
				}
				seen[e.Name] = struct{}{}

				domain := e.Name
				if len(e.Domains) > 0 {
					domain = e.Domains[0]
				}

				records = append(records, s.newRecord(e.Name, domain, e.Expiry, now))
			}
		}
	}

	fsRecords := s.scanLiveDir(now, seen)
	records = append(records, fsRecords...)

	return records, nil
}

// scanLiveDir walks the live directory and parses certificates whose names
// weren't produced by the registry pass.
func (s *Scanner) scanLiveDir(now time.Time, seen map[string]struct{}) []Record {
	if s.LiveDir == "" {
		return nil
	}

	dirEntries, err := os.ReadDir(s.LiveDir)
	if err != nil {
		return nil
	}

	var records []Record
	for _, de := range dirEntries {
		if !de.IsDir() {
			continue
		}
		name := de.Name()
		if _, dup := seen[name]; dup {
			continue
		}

		info, ok := s.readCert(filepath.Join(s.LiveDir, name))
		if !ok {
			continue
		}
		seen[name] = struct{}{}

		domain := info.CommonName
		if domain == "" && len(info.DNSNames) > 0 {
			domain = info.DNSNames[0]
		}
		if domain == "" {
			domain = name
		}

		records = append(records, s.newRecord(name, domain, info.NotAfter, now))
	}

	return records
}

// readCert loads and parses the first available certificate file in dir.
func (s *Scanner) readCert(dir string) (certs.Info, bool) {
	for _, fileName := range certFileNames {
		path := filepath.Join(dir, fileName)

		f, err := os.Open(path)
		if err != nil {
			continue
		}

		buf := gc.Default.Get()
		_, readErr := buf.ReadFrom(f)
		f.Close()
		if readErr != nil {
			buf.Reset()
			gc.Default.Put(buf)
			continue
		}

		data := append([]byte(nil), buf.Bytes()...)
		buf.Reset()
		gc.Default.Put(buf)

		info, err := s.Decoder.Extract(data)
		if err != nil {
			continue
		}
		return info, true
	}

	return certs.Info{}, false
}

// newRecord classifies and assembles a record.
func (s *Scanner) newRecord(name, domain string, expiry, now time.Time) Record {
	days, status := Classify(expiry, now)

	method := certbot.MethodUnknown
	if s.Methods != nil {
		method = s.Methods.Resolve(name)
	}

	return Record{
		Name:     name,
		Domain:   domain,
		Expiry:   expiry,
		DaysLeft: days,
		Status:   status,
		Method:   method,
	}
}
