package agent

import (
	"context"

	"course-compass/pkg/llmprovider"
)

// ActionKind names a supported side effect. It equals the tool name the
// model uses to request it.
type ActionKind string

// Action is a decoded, validated tool invocation.
type Action interface {
	Kind() ActionKind
}

// Tool represents an agent tool that can be called by LLM.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Description returns what the tool does (for LLM).
	Description() string

	// Parameters returns JSON schema for tool parameters.
	Parameters() map[string]interface{}

	// Decode turns raw model arguments into a typed action. It has no side
	// effects and fails with ErrInvalidArguments when a required field is
	// missing or has the wrong type.
	Decode(args map[string]interface{}) (Action, error)

	// Execute runs a decoded action.
	Execute(ctx context.Context, action Action) (interface{}, error)
}

// ToolRegistry manages available tools in registration order.
type ToolRegistry struct {
	order []string
	tools map[string]Tool
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry(tools ...Tool) *ToolRegistry {
	r := &ToolRegistry{
		tools: make(map[string]Tool),
	}
	for _, t := range tools {
		r.Register(t)
	}
	return r
}

// Register adds a tool to the registry. Registering a name twice replaces the
// earlier tool and keeps its position.
func (r *ToolRegistry) Register(tool Tool) {
	name := tool.Name()
	if _, ok := r.tools[name]; !ok {
		r.order = append(r.order, name)
	}
	r.tools[name] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// ToFunctionDefinitions converts tools to LLM function calling format.
func (r *ToolRegistry) ToFunctionDefinitions() []llmprovider.Tool {
	tools := make([]llmprovider.Tool, 0, len(r.order))
	for _, tool := range r.List() {
		tools = append(tools, llmprovider.Tool{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return tools
}
