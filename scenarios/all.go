package scenarios

// All contains all built-in scenarios, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]Scenario{
	"basic":    basicScenarios,
	"geometry": geometryScenarios,
	"sample":   sampleScenarios,
}
