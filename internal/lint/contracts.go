package lint

// requiredFields maps a lowercased node type to the fields every node of that
// type must carry. Unknown types get a warning and skip the contract entirely.
var requiredFields = map[string][]string{
	"agent":      {"type", "name", "inputs", "outputs"},
	"ifelse":     {"type", "name", "conditions"},
	"aggregator": {"type", "name", "outputs"},
	"iterator":   {"type", "name", "inputs"},
	"while":      {"type", "name", "inputs"},
}

// containerTypes are the node types that own a nested subgraph.
var containerTypes = map[string]bool{
	"iterator": true,
	"while":    true,
}

// initKwargsExempt lists agent_path values for built-in agents that take no
// initialization parameters, so init_kwargs is not required for them.
var initKwargsExempt = map[string]bool{
	"agents.echo.EchoAgent":               true,
	"agents.passthrough.PassthroughAgent": true,
	"agents.merge.MergeAgent":             true,
}
