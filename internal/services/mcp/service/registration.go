package service

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/santiment/sanbase/internal/backtest"
	"github.com/santiment/sanbase/internal/platform/assets/imagecdn"
	"github.com/santiment/sanbase/internal/services/mcp/domain"
)

type mcpRegistrationKind int

const (
	mcpRegistrationKindTools mcpRegistrationKind = iota
	mcpRegistrationKindResources
)

const (
	mcpIconToolsModuleName     = "icon-tools"
	mcpSearchToolsModuleName   = "search-tools"
	mcpBacktestToolsModuleName = "backtest-tools"
	mcpIconResourceModuleName  = "icon-resources"
)

type mcpRegistrationModule struct {
	name     string
	kind     mcpRegistrationKind
	register func(mcpRegistrationTarget) error
}

type mcpRegistrationTarget interface {
	AddTool(*mcp.Tool, any) error
	AddResourceTemplate(*mcp.ResourceTemplate, mcp.ResourceHandler)
	AddResource(*mcp.Resource, mcp.ResourceHandler)
}

type mcpRegistrationDeps struct {
	cdn        imagecdn.CDN
	searchData []string
	sample     backtest.Sample
}

type mcpServerRegistrationAdapter struct {
	server *mcp.Server
}

func (r mcpServerRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	return addMCPTool(r.server, tool, handler)
}

func (r mcpServerRegistrationAdapter) AddResourceTemplate(resourceTemplate *mcp.ResourceTemplate, handler mcp.ResourceHandler) {
	r.server.AddResourceTemplate(resourceTemplate, handler)
}

func (r mcpServerRegistrationAdapter) AddResource(resource *mcp.Resource, handler mcp.ResourceHandler) {
	r.server.AddResource(resource, handler)
}

type mcpToolRegistrar struct {
	matches func(any) bool
	add     func(*mcp.Server, *mcp.Tool, any)
}

func newMCPToolRegistrar[I any, O any]() mcpToolRegistrar {
	return mcpToolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, O])
			return ok
		},
		add: func(server *mcp.Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server, tool, handler.(mcp.ToolHandlerFor[I, O]))
		},
	}
}

var mcpToolRegistrars = []mcpToolRegistrar{
	newMCPToolRegistrar[domain.ResolveProjectIconInput, domain.ResolveProjectIconResult](),
	newMCPToolRegistrar[domain.SuggestProjectsInput, domain.SuggestProjectsResult](),
	newMCPToolRegistrar[domain.BuildBacktestChartInput, domain.BuildBacktestChartResult](),
}

func addMCPTool(server *mcp.Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range mcpToolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("mcp registration adapter does not support handler type %T for tool %q", handler, toolName)
}

func registerTool(registrar mcpRegistrationTarget, tool *mcp.Tool, handler any) error {
	if registrar == nil {
		return fmt.Errorf("mcp registrar is nil")
	}
	return registrar.AddTool(tool, handler)
}

func newMCPRegistrationModules(deps mcpRegistrationDeps) []mcpRegistrationModule {
	return []mcpRegistrationModule{
		{
			name: mcpIconToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(registrar mcpRegistrationTarget) error {
				return registerTool(registrar, domain.ResolveProjectIconTool(), domain.ResolveProjectIconHandler(deps.cdn))
			},
		},
		{
			name: mcpSearchToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(registrar mcpRegistrationTarget) error {
				return registerTool(registrar, domain.SuggestProjectsTool(), domain.SuggestProjectsHandler(deps.searchData))
			},
		},
		{
			name: mcpBacktestToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(registrar mcpRegistrationTarget) error {
				return registerTool(registrar, domain.BuildBacktestChartTool(), domain.BuildBacktestChartHandler(deps.sample))
			},
		},
		{
			name: mcpIconResourceModuleName,
			kind: mcpRegistrationKindResources,
			register: func(registrar mcpRegistrationTarget) error {
				registrar.AddResource(domain.IconCatalogResource(), domain.IconCatalogResourceHandler())
				registrar.AddResourceTemplate(domain.IconResourceTemplate(), domain.IconResourceHandler(deps.cdn))
				return nil
			},
		},
	}
}
