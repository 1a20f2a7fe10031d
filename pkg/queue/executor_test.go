package queue

import (
	"context"
	"testing"

	"github.com/Spark-Corporations/Red-Shadow-sub000/ent"
	"github.com/Spark-Corporations/Red-Shadow-sub000/ent/engagement"
	enttask "github.com/Spark-Corporations/Red-Shadow-sub000/ent/task"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/config"
	"github.com/Spark-Corporations/Red-Shadow-sub000/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecomposition(t *testing.T) {
	t.Run("valid plan with surrounding prose", func(t *testing.T) {
		content := `Here is the plan:
[
  {"id": "recon-1", "description": "Enumerate DNS for example.com", "type": "recon"},
  {"id": "exploit-1", "description": "Exploit top path", "dependencies": ["recon-1"], "type": "exploit"}
]
Good luck.`

		specs, err := parseDecomposition(content)
		require.NoError(t, err)
		require.Len(t, specs, 2)
		assert.Equal(t, "recon-1", specs[0].Key)
		assert.Equal(t, models.TaskTypeRecon, specs[0].Type)
		assert.Empty(t, specs[0].Dependencies)
		assert.Equal(t, "exploit-1", specs[1].Key)
		assert.Equal(t, []string{"recon-1"}, specs[1].Dependencies)
	})

	t.Run("no JSON array", func(t *testing.T) {
		_, err := parseDecomposition("I could not produce a plan.")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no JSON array")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := parseDecomposition(`[{"id": "a", "description": }]`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not valid JSON")
	})

	t.Run("empty array", func(t *testing.T) {
		_, err := parseDecomposition("[]")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty")
	})

	t.Run("task without id", func(t *testing.T) {
		_, err := parseDecomposition(`[{"id": "", "description": "x"}]`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "without an id")
	})

	t.Run("task without description", func(t *testing.T) {
		_, err := parseDecomposition(`[{"id": "a", "description": ""}]`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no description")
	})

	t.Run("duplicate ids", func(t *testing.T) {
		_, err := parseDecomposition(`[
			{"id": "a", "description": "first"},
			{"id": "a", "description": "second"}
		]`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate task id")
	})

	t.Run("self dependency", func(t *testing.T) {
		_, err := parseDecomposition(`[{"id": "a", "description": "x", "dependencies": ["a"]}]`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "depends on itself")
	})

	t.Run("dangling dependency", func(t *testing.T) {
		_, err := parseDecomposition(`[{"id": "a", "description": "x", "dependencies": ["ghost"]}]`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown task ghost")
	})

	t.Run("too many tasks", func(t *testing.T) {
		content := "["
		for i := 0; i < maxDecomposedTasks+1; i++ {
			if i > 0 {
				content += ","
			}
			content += `{"id": "t` + string(rune('a'+i)) + `", "description": "task"}`
		}
		content += "]"

		_, err := parseDecomposition(content)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "limit is")
	})
}

func TestDefaultDecomposition(t *testing.T) {
	t.Run("network plan has dependency chain", func(t *testing.T) {
		specs := defaultDecomposition("network", "assess 10.0.0.0/24")
		require.Len(t, specs, 5)

		byKey := make(map[string][]string, len(specs))
		for _, s := range specs {
			byKey[s.Key] = s.Dependencies
		}
		assert.Contains(t, byKey, "recon-1")
		assert.Contains(t, byKey, "recon-2")
		assert.ElementsMatch(t, []string{"recon-1", "recon-2"}, byKey["analysis-1"])
		assert.Equal(t, []string{"analysis-1"}, byKey["exploit-1"])
		assert.Equal(t, []string{"exploit-1"}, byKey["validate-1"])
	})

	t.Run("web plan uses web phases", func(t *testing.T) {
		specs := defaultDecomposition("web", "assess https://example.com")
		require.Len(t, specs, 5)
		assert.Equal(t, "recon-1", specs[0].Key)
		assert.Equal(t, models.TaskTypeScan, specs[1].Type)
		for _, s := range specs {
			assert.Contains(t, s.Description, "https://example.com",
				"every description must restate the objective")
		}
	})

	t.Run("unknown objective type falls back to network plan", func(t *testing.T) {
		specs := defaultDecomposition("something-new", "objective")
		require.Len(t, specs, 5)
		assert.Equal(t, "recon-1", specs[0].Key)
		assert.Equal(t, "recon-2", specs[1].Key)
	})

	t.Run("every plan validates against the parser rules", func(t *testing.T) {
		for _, objType := range []string{"network", "web", "full", ""} {
			specs := defaultDecomposition(objType, "x")
			seen := make(map[string]struct{})
			for _, s := range specs {
				_, dup := seen[s.Key]
				require.False(t, dup, "%s: duplicate key %s", objType, s.Key)
				seen[s.Key] = struct{}{}
			}
			for _, s := range specs {
				for _, dep := range s.Dependencies {
					_, ok := seen[dep]
					require.True(t, ok, "%s: task %s has dangling dependency %s", objType, s.Key, dep)
				}
			}
		}
	})
}

func TestProgressPossible(t *testing.T) {
	task := func(key string, status enttask.Status, deps ...string) *ent.Task {
		return &ent.Task{TaskKey: key, Status: status, Dependencies: deps}
	}

	t.Run("running task means progress", func(t *testing.T) {
		tasks := []*ent.Task{
			task("a", enttask.StatusComplete),
			task("b", enttask.StatusRunning, "a"),
		}
		assert.True(t, progressPossible(tasks))
	})

	t.Run("pending task with satisfied deps means progress", func(t *testing.T) {
		tasks := []*ent.Task{
			task("a", enttask.StatusComplete),
			task("b", enttask.StatusPending, "a"),
		}
		assert.True(t, progressPossible(tasks))
	})

	t.Run("pending behind failed dep is stalled", func(t *testing.T) {
		tasks := []*ent.Task{
			task("a", enttask.StatusFailed),
			task("b", enttask.StatusPending, "a"),
		}
		assert.False(t, progressPossible(tasks))
	})

	t.Run("chain through another pending task counts", func(t *testing.T) {
		tasks := []*ent.Task{
			task("a", enttask.StatusComplete),
			task("b", enttask.StatusPending, "a"),
			task("c", enttask.StatusPending, "b"),
		}
		assert.True(t, progressPossible(tasks))
	})

	t.Run("pending chain rooted in failure is stalled", func(t *testing.T) {
		tasks := []*ent.Task{
			task("a", enttask.StatusFailed),
			task("b", enttask.StatusPending, "a"),
			task("c", enttask.StatusPending, "b"),
		}
		assert.False(t, progressPossible(tasks))
	})

	t.Run("missing dependency is stalled", func(t *testing.T) {
		tasks := []*ent.Task{
			task("b", enttask.StatusPending, "ghost"),
		}
		assert.False(t, progressPossible(tasks))
	})

	t.Run("all terminal means no progress", func(t *testing.T) {
		tasks := []*ent.Task{
			task("a", enttask.StatusComplete),
			task("b", enttask.StatusFailed),
		}
		assert.False(t, progressPossible(tasks))
	})
}

func TestExecutorMapCancellation(t *testing.T) {
	e := &TeamLeadExecutor{}

	t.Run("live context returns nil", func(t *testing.T) {
		assert.Nil(t, e.mapCancellation(context.Background()))
	})

	t.Run("cancelled context maps to cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result := e.mapCancellation(ctx)
		require.NotNil(t, result)
		assert.Equal(t, engagement.StatusCancelled, result.Status)
		assert.ErrorIs(t, result.Error, context.Canceled)
	})

	t.Run("deadline exceeded maps to timed_out", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 0)
		defer cancel()
		<-ctx.Done()

		result := e.mapCancellation(ctx)
		require.NotNil(t, result)
		assert.Equal(t, engagement.StatusTimedOut, result.Status)
		assert.Contains(t, result.Error.Error(), "timed out")
	})
}

func TestResolveScope(t *testing.T) {
	configScope := &models.Scope{IncludeCIDRs: []string{"10.0.0.0/8"}}
	e := &TeamLeadExecutor{cfg: &config.Config{Scope: configScope}}

	t.Run("engagement scope wins", func(t *testing.T) {
		eng := &ent.Engagement{
			Scope: map[string]interface{}{
				"include_cidrs": []interface{}{"192.168.1.0/24"},
			},
		}
		scope := e.resolveScope(eng)
		require.NotNil(t, scope)
		assert.Equal(t, []string{"192.168.1.0/24"}, scope.IncludeCIDRs)
	})

	t.Run("empty engagement scope falls back to config", func(t *testing.T) {
		scope := e.resolveScope(&ent.Engagement{})
		assert.Same(t, configScope, scope)
	})
}

func TestFindingNote(t *testing.T) {
	t.Run("title with severity", func(t *testing.T) {
		note := findingNote(map[string]any{
			"title":    "Exposed admin panel",
			"severity": "high",
		})
		assert.Equal(t, "[high] Exposed admin panel", note)
	})

	t.Run("title only", func(t *testing.T) {
		note := findingNote(map[string]any{"title": "Open redirect"})
		assert.Equal(t, "Open redirect", note)
	})

	t.Run("missing title returns empty", func(t *testing.T) {
		assert.Empty(t, findingNote(map[string]any{"severity": "low"}))
	})

	t.Run("non-string values ignored", func(t *testing.T) {
		assert.Empty(t, findingNote(map[string]any{"title": 42}))
	})
}

func TestFormatSeverityCounts(t *testing.T) {
	got := formatSeverityCounts(map[string]int{
		"low":      3,
		"critical": 1,
		"medium":   2,
	})
	assert.Equal(t, "1 critical, 2 medium, 3 low", got)
}

func TestTruncateForPrompt(t *testing.T) {
	t.Run("short content unchanged", func(t *testing.T) {
		assert.Equal(t, "abc", truncateForPrompt("abc", 10))
	})

	t.Run("long content truncated with marker", func(t *testing.T) {
		got := truncateForPrompt("0123456789", 4)
		assert.Contains(t, got, "0123")
		assert.Contains(t, got, "truncated 6 of 10 chars")
	})
}

func TestUnfinishedDetail(t *testing.T) {
	t.Run("error wins", func(t *testing.T) {
		msg := "ssh refused"
		got := unfinishedDetail(&ent.Task{Status: enttask.StatusFailed, Error: &msg})
		assert.Equal(t, "ssh refused", got)
	})

	t.Run("pending without error is blocked", func(t *testing.T) {
		got := unfinishedDetail(&ent.Task{Status: enttask.StatusPending})
		assert.Equal(t, "blocked by a failed dependency", got)
	})

	t.Run("empty error string reads as absent", func(t *testing.T) {
		empty := ""
		got := unfinishedDetail(&ent.Task{Status: enttask.StatusFailed, Error: &empty})
		assert.Equal(t, "no detail recorded", got)
	})

	t.Run("failed without error", func(t *testing.T) {
		got := unfinishedDetail(&ent.Task{Status: enttask.StatusFailed})
		assert.Equal(t, "no detail recorded", got)
	})
}

func TestTaskResult(t *testing.T) {
	res := "open ports: 22, 80"
	assert.Equal(t, "open ports: 22, 80", taskResult(&ent.Task{Result: &res}))
	assert.Equal(t, "", taskResult(&ent.Task{}))
}
