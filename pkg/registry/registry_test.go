// pkg/registry/registry_test.go
package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activity-registry.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRegistry(t *testing.T) {
	path := writeRegistry(t, `{
		"version": "1.0.0",
		"activities": [
			{"id": "score-quiz", "taskType": "score-quiz", "category": "guidance"},
			{"id": "calculate-roi", "taskType": "calculate-roi", "category": "guidance"}
		]
	}`)

	reg, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Len(t, reg.Activities, 2)
	assert.NoError(t, reg.Validate())
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry("does-not-exist.json")
	assert.Error(t, err)
}

func TestFindByTaskType(t *testing.T) {
	reg := &ActivityRegistry{Activities: []Activity{
		{ID: "retrieve-matches", TaskType: "retrieve-matches", Category: "guidance"},
	}}

	assert.NotNil(t, reg.FindByTaskType("retrieve-matches"))
	assert.Nil(t, reg.FindByTaskType("unknown-task"))
}

func TestValidate_Duplicates(t *testing.T) {
	reg := &ActivityRegistry{Activities: []Activity{
		{ID: "score-quiz", TaskType: "score-quiz", Category: "guidance"},
		{ID: "score-quiz", TaskType: "score-quiz-v2", Category: "guidance"},
	}}
	assert.Error(t, reg.Validate())

	reg = &ActivityRegistry{Activities: []Activity{
		{ID: "a", TaskType: "score-quiz", Category: "guidance"},
		{ID: "b", TaskType: "score-quiz", Category: "guidance"},
	}}
	assert.Error(t, reg.Validate())
}

func TestValidate_MissingFields(t *testing.T) {
	reg := &ActivityRegistry{Activities: []Activity{
		{ID: "a", TaskType: "", Category: "guidance"},
	}}
	assert.Error(t, reg.Validate())
}

// The shipped registry is the worker manager's task-type inventory: it must
// validate and carry every guidance worker the manager registers.
func TestShippedRegistry_CoversGuidanceWorkers(t *testing.T) {
	reg, err := LoadRegistry(filepath.Join("..", "..", "configs", "activity-registry.json"))
	require.NoError(t, err)
	require.NoError(t, reg.Validate())

	taskTypes := []string{
		"score-quiz",
		"resolve-recommendation",
		"retrieve-matches",
		"calculate-roi",
		"send-guidance-report",
	}
	for _, taskType := range taskTypes {
		activity := reg.FindByTaskType(taskType)
		require.NotNil(t, activity, "task type %s not registered", taskType)
		assert.Equal(t, "guidance", activity.Category)
	}
}
