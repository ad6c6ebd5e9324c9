// Package openapi embeds the OpenAPI description of the HTTP API.
package openapi

import _ "embed"

// Spec is the OpenAPI 3 document served at /openapi/villa.json.
//
//go:embed villa.json
var Spec []byte
