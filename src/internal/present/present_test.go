// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package present_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"

	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/inventory"
	"github.com/H0llyW00dzZ/tls-cert-renewal-manager/src/internal/present"
)

// reportSchema pins the machine-readable output surface; scripted consumers
// depend on these fields.
const reportSchema = `{
  "type": "object",
  "required": ["generatedAt", "count", "certificates"],
  "properties": {
    "generatedAt": {"type": "string"},
    "count": {"type": "integer", "minimum": 0},
    "certificates": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "domain", "expiry", "daysLeft", "status", "renewalMethod"],
        "properties": {
          "name": {"type": "string"},
          "domain": {"type": "string"},
          "expiry": {"type": "string"},
          "daysLeft": {"type": "integer"},
          "status": {"type": "string", "enum": ["VALID", "EXPIRED"]},
          "renewalMethod": {"type": "string"}
        }
      }
    }
  }
}`

func sampleRecords() []inventory.Record {
	expiry := time.Date(2026, 11, 15, 7, 30, 0, 0, time.UTC)
	return []inventory.Record{
		{
			Name:     "gone.example.net",
			Domain:   "gone.example.net",
			Expiry:   expiry.Add(-120 * 24 * time.Hour),
			DaysLeft: -44,
			Status:   inventory.StatusExpired,
			Method:   "Manual/Other",
		},
		{
			Name:     "soon.example.com",
			Domain:   "soon.example.com",
			Expiry:   expiry,
			DaysLeft: 12,
			Status:   inventory.StatusValid,
			Method:   "Webroot",
		},
		{
			Name:     "example.com",
			Domain:   "example.com",
			Expiry:   expiry.Add(60 * 24 * time.Hour),
			DaysLeft: 76,
			Status:   inventory.StatusValid,
			Method:   "Nginx plugin",
		},
	}
}

func TestRenderTable(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "empty set prints message instead of table",
			testFunc: func(t *testing.T) {
				p := present.New(present.Options{})
				out := p.RenderTable(nil)
				assert.Equal(t, "No certificates found.\n", out)
			},
		},
		{
			name: "all columns present",
			testFunc: func(t *testing.T) {
				p := present.New(present.Options{})
				out := p.RenderTable(sampleRecords())

				for _, col := range []string{"NAME", "DOMAIN", "EXPIRY", "DAYS LEFT", "STATUS", "METHOD"} {
					assert.Contains(t, out, col)
				}
				assert.Contains(t, out, "gone.example.net")
				assert.Contains(t, out, "EXPIRED")
				assert.Contains(t, out, "2026-11-15")
			},
		},
		{
			name: "no escape codes without color",
			testFunc: func(t *testing.T) {
				p := present.New(present.Options{Color: false})
				out := p.RenderTable(sampleRecords())
				assert.NotContains(t, out, "\x1b[", "plain output must carry no ANSI codes")
			},
		},
		{
			name: "expired row is red, warning row yellow",
			testFunc: func(t *testing.T) {
				p := present.New(present.Options{Color: true, WarnDays: 30})
				out := p.RenderTable(sampleRecords())

				assert.Contains(t, out, "\x1b[31m", "expired row highlighted red")
				assert.Contains(t, out, "\x1b[33m", "warning row highlighted yellow")
			},
		},
		{
			name: "expired takes precedence over warning tier",
			testFunc: func(t *testing.T) {
				p := present.New(present.Options{Color: true, WarnDays: 30})
				records := []inventory.Record{
					{Name: "x.example.com", Domain: "x.example.com", DaysLeft: -2, Status: inventory.StatusExpired},
				}
				out := p.RenderTable(records)

				assert.Contains(t, out, "\x1b[31m")
				assert.NotContains(t, out, "\x1b[33m", "exactly one highlight per row")
			},
		},
		{
			name: "long fields are truncated",
			testFunc: func(t *testing.T) {
				p := present.New(present.Options{})
				records := []inventory.Record{
					{
						Name:   "a-very-long-certificate-name.spanning.many.labels.example.com",
						Domain: "a-very-long-certificate-name.spanning.many.labels.example.com",
						Status: inventory.StatusValid,
					},
				}
				out := p.RenderTable(records)
				assert.Contains(t, out, "...")
				assert.NotContains(t, out, "a-very-long-certificate-name.spanning.many.labels.example.com")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestRenderJSON(t *testing.T) {
	p := present.New(present.Options{})

	tests := []struct {
		name    string
		records []inventory.Record
	}{
		{name: "populated inventory", records: sampleRecords()},
		{name: "empty inventory", records: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := p.RenderJSON(tt.records)
			require.NoError(t, err)

			result, err := gojsonschema.Validate(
				gojsonschema.NewStringLoader(reportSchema),
				gojsonschema.NewBytesLoader(data),
			)
			require.NoError(t, err)

			if !result.Valid() {
				var msgs []string
				for _, desc := range result.Errors() {
					msgs = append(msgs, desc.String())
				}
				t.Fatalf("JSON output violates schema: %s", strings.Join(msgs, "; "))
			}
		})
	}
}
