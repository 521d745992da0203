// Package domain defines the MCP tools and resources exposed by Sanbase.
//
// Each tool pairs a schema constructor (XxxTool) with a handler constructor
// (XxxHandler). Handlers are pure functions over the presentation packages
// and never touch transport concerns.
package domain
