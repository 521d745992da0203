// Package branding holds product naming shared by every surface.
package branding

// AppName is the product name shown in page titles and MCP metadata.
const AppName = "Sanbase"

// Tagline is the short product description used in page metadata.
const Tagline = "Crypto project insights, backtests, and on-chain signals."
