// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package certs provides decoding of [X.509] certificate material for the
// inventory scanner. It accepts [PEM], DER, and [PKCS7] inputs and extracts
// the fields the inventory cares about: subject common name and expiry.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package certs
