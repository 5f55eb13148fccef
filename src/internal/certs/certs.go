// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package certs

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"time"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

var (
	// ErrInvalidPEMBlock indicates that the provided data does not contain a valid PEM block.
	ErrInvalidPEMBlock = errors.New("certs: invalid PEM block")

	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("certs: failed to parse certificate")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("certs: no certificates found in PKCS7 data")
)

// Info is the subset of certificate fields the inventory scanner records.
type Info struct {
	// CommonName is the subject common name, typically the primary domain.
	CommonName string
	// DNSNames lists the subject alternative names, if any.
	DNSNames []string
	// NotAfter is the expiry timestamp.
	NotAfter time.Time
}

// Decoder provides methods to decode [X.509] certificates.
// It maintains internal configuration such as the certificate block type.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
type Decoder struct {
	certBlockType string
}

// New creates a new Decoder with default settings.
func New() *Decoder {
	return &Decoder{
		certBlockType: "CERTIFICATE",
	}
}

// IsPEM checks if the data is in PEM format.
func (d *Decoder) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// decodePEMBlock decodes the first PEM block and checks its type.
//
// Live-directory files are often full chains; only the leading block (the
// leaf) matters to the inventory.
func (d *Decoder) decodePEMBlock(data []byte) (*pem.Block, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrInvalidPEMBlock
	}
	if block.Type != d.certBlockType {
		return nil, ErrInvalidBlockType
	}
	return block, nil
}

// Decode decodes a single certificate from data.
//
// PEM input uses the first CERTIFICATE block. Non-PEM input is tried as DER
// and then as PKCS7 using Cloudflare's library.
func (d *Decoder) Decode(data []byte) (*x509.Certificate, error) {
	if d.IsPEM(data) {
		block, err := d.decodePEMBlock(data)
		if err != nil {
			return nil, err
		}

		data = block.Bytes
	}

	cert, err := x509.ParseCertificate(data)
	if err == nil {
		return cert, nil
	}

	// Attempt to parse as PKCS7 using Cloudflare's library
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParseCertificate
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	return p.Content.SignedData.Certificates[0], nil
}

// Extract decodes certificate data and returns the fields the inventory records.
//
// Parameters:
//   - data: Raw certificate bytes (PEM, DER, or PKCS7)
//
// Returns:
//   - Info: Subject common name, SANs, and expiry
//   - error: Error if the data cannot be decoded
func (d *Decoder) Extract(data []byte) (Info, error) {
	cert, err := d.Decode(data)
	if err != nil {
		return Info{}, err
	}

	return Info{
		CommonName: cert.Subject.CommonName,
		DNSNames:   cert.DNSNames,
		NotAfter:   cert.NotAfter,
	}, nil
}
