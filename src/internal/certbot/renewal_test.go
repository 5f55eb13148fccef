// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certbot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/certbot"
)

const renewalConf = `# renew_before_expiry = 30 days
version = 2.9.0
archive_dir = /etc/letsencrypt/archive/example.com
cert = /etc/letsencrypt/live/example.com/cert.pem

[renewalparams]
account = 0123456789abcdef
authenticator = webroot
server = https://acme-v02.api.letsencrypt.org/directory
key_type = ecdsa
`

func TestParseRenewalConf(t *testing.T) {
	values := certbot.ParseRenewalConf([]byte(renewalConf))

	assert.Equal(t, "webroot", values["authenticator"])
	assert.Equal(t, "2.9.0", values["version"])
	assert.Equal(t, "https://acme-v02.api.letsencrypt.org/directory", values["server"])

	// Comments and section headers contribute nothing.
	assert.NotContains(t, values, "renewalparams")
	assert.NotContains(t, values, "# renew_before_expiry")
}

func TestMethodResolver(t *testing.T) {
	writeConf := func(t *testing.T, dir, name, authenticator string) {
		conf := "[renewalparams]\nauthenticator = " + authenticator + "\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".conf"), []byte(conf), 0644))
	}

	tests := []struct {
		name     string
		testFunc func(t *testing.T, r *certbot.MethodResolver)
	}{
		{
			name: "webroot authenticator",
			testFunc: func(t *testing.T, r *certbot.MethodResolver) {
				writeConf(t, r.RenewalDir, "example.com", "webroot")
				assert.Equal(t, "Webroot", r.Resolve("example.com"))
			},
		},
		{
			name: "nginx authenticator",
			testFunc: func(t *testing.T, r *certbot.MethodResolver) {
				writeConf(t, r.RenewalDir, "example.com", "nginx")
				assert.Equal(t, "Nginx plugin", r.Resolve("example.com"))
			},
		},
		{
			name: "apache authenticator",
			testFunc: func(t *testing.T, r *certbot.MethodResolver) {
				writeConf(t, r.RenewalDir, "example.com", "apache")
				assert.Equal(t, "Apache plugin", r.Resolve("example.com"))
			},
		},
		{
			name: "standalone authenticator",
			testFunc: func(t *testing.T, r *certbot.MethodResolver) {
				writeConf(t, r.RenewalDir, "example.com", "standalone")
				assert.Equal(t, "Standalone", r.Resolve("example.com"))
			},
		},
		{
			name: "manual authenticator",
			testFunc: func(t *testing.T, r *certbot.MethodResolver) {
				writeConf(t, r.RenewalDir, "example.com", "manual")
				assert.Equal(t, "DNS challenge (manual)", r.Resolve("example.com"))
			},
		},
		{
			name: "dns plugin authenticator carries plugin name",
			testFunc: func(t *testing.T, r *certbot.MethodResolver) {
				writeConf(t, r.RenewalDir, "example.com", "dns-cloudflare")
				assert.Equal(t, "DNS challenge (dns-cloudflare)", r.Resolve("example.com"))
			},
		},
		{
			name: "unmapped authenticator carries raw value",
			testFunc: func(t *testing.T, r *certbot.MethodResolver) {
				writeConf(t, r.RenewalDir, "example.com", "carrier-pigeon")
				assert.Equal(t, "Unknown (carrier-pigeon)", r.Resolve("example.com"))
			},
		},
		{
			name: "conf without authenticator",
			testFunc: func(t *testing.T, r *certbot.MethodResolver) {
				conf := "[renewalparams]\nserver = https://acme-v02.api.letsencrypt.org/directory\n"
				require.NoError(t, os.WriteFile(filepath.Join(r.RenewalDir, "example.com.conf"), []byte(conf), 0644))
				assert.Equal(t, certbot.MethodUnknown, r.Resolve("example.com"))
			},
		},
		{
			name: "no conf but live material",
			testFunc: func(t *testing.T, r *certbot.MethodResolver) {
				require.NoError(t, os.MkdirAll(filepath.Join(r.LiveDir, "example.com"), 0755))
				assert.Equal(t, certbot.MethodManualOther, r.Resolve("example.com"))
			},
		},
		{
			name: "neither conf nor live material",
			testFunc: func(t *testing.T, r *certbot.MethodResolver) {
				assert.Equal(t, certbot.MethodUnknown, r.Resolve("ghost.example.com"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &certbot.MethodResolver{
				RenewalDir: t.TempDir(),
				LiveDir:    t.TempDir(),
			}
			tt.testFunc(t, r)
		})
	}
}
