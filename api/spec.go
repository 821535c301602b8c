package api

import _ "embed"

// OpenAPIDocument is the document the server interface is generated from.
//
//go:embed openapi.yml
var OpenAPIDocument []byte
