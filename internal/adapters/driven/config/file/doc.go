// Package file provides file-based configuration storage using TOML.
//
// Configuration lives in ~/.ansera/config.toml by default. Recognised
// keys:
//
//	top_k          - result limit for the retrieve command
//	generator      - "extractive" (default) or "openai"
//	verbose        - enable pipeline logging
//	openai.api_key - API key for the openai generator
//	openai.model   - model override for the openai generator
package file
