// Package service wires MCP transports to the domain tools.
//
// It knows how to run MCP over stdio or streamable HTTP and delegates
// meaning to the handlers in the domain package.
package service
