// Package domain holds the request/response DTOs, output format enum, and
// error type shared by graalservice, the CLI, and the MCP server — the
// layer that translates between user-facing input and the align package's
// engine parameters.
package domain
