package validation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed task_types.json
var taskTypesJSON []byte

// TaskTypeMatrix maps task type names to their declaration requirements
type TaskTypeMatrix struct {
	TaskTypes map[string]TaskTypeInfo `json:"taskTypes"`
}

// TaskTypeInfo describes one supported task type
type TaskTypeInfo struct {
	LocatorField string `json:"locatorField"`
	Description  string `json:"description"`
}

var matrix *TaskTypeMatrix

// init loads the embedded task type matrix
func init() {
	var err error
	matrix, err = loadTaskTypeMatrix()
	if err != nil {
		// Fallback to the built-in types if the matrix fails to load
		matrix = getDefaultMatrix()
	}
}

func loadTaskTypeMatrix() (*TaskTypeMatrix, error) {
	var m TaskTypeMatrix
	if err := json.Unmarshal(taskTypesJSON, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal task type matrix: %w", err)
	}
	return &m, nil
}

func getDefaultMatrix() *TaskTypeMatrix {
	return &TaskTypeMatrix{
		TaskTypes: map[string]TaskTypeInfo{
			"file":  {LocatorField: "file"},
			"url":   {LocatorField: "url"},
			"class": {LocatorField: "class"},
		},
	}
}

// LocatorField returns the declaration field that carries the locator for
// the given task type, and whether the type is known at all.
func LocatorField(taskType string) (string, bool) {
	info, ok := matrix.TaskTypes[taskType]
	if !ok {
		return "", false
	}
	return info.LocatorField, true
}

// KnownTypes returns the supported task type names in stable order
func KnownTypes() []string {
	types := make([]string, 0, len(matrix.TaskTypes))
	for t := range matrix.TaskTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
