package optioneer

import (
	"fmt"
	"sort"
)

// FieldDescriptor describes one visible option path and its inferred type,
// for machine-readable discovery alongside the textual Report.
type FieldDescriptor struct {
	Path string `json:"path" yaml:"path"`
	Type string `json:"type" yaml:"type"`
	Doc  string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// Schema returns flattened descriptors for every non-deprecated option,
// sorted by path. Types are inferred from the default value so the schema is
// stable under Set.
func (r *Registry) Schema() []FieldDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptors := make([]FieldDescriptor, 0, len(r.nodes))
	for _, node := range r.nodes {
		if node.deprecated() {
			continue
		}
		descriptors = append(descriptors, FieldDescriptor{
			Path: node.path.String(),
			Type: typeName(node.defaultValue),
			Doc:  node.doc,
		})
	}
	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].Path < descriptors[j].Path
	})
	return descriptors
}

func typeName(value any) string {
	if value == nil {
		return "nil"
	}
	switch value.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int8, int16, int32, int64:
		return "int"
	case uint, uint8, uint16, uint32, uint64:
		return "uint"
	case float32, float64:
		return "float"
	case map[string]any:
		return "map[string]any"
	case []any:
		return "[]any"
	default:
		return fmt.Sprintf("%T", value)
	}
}
