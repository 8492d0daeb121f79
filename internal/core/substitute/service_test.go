package substitute

import (
	"context"
	"errors"
	"testing"

	"table-talk/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	models  []string
	replies []fakeReply
	calls   int
}

type fakeReply struct {
	content string
	err     error
}

func (f *fakeGenerator) Enabled() bool    { return true }
func (f *fakeGenerator) Models() []string { return f.models }

func (f *fakeGenerator) Complete(ctx context.Context, model, system, user string) (string, error) {
	f.calls++
	if len(f.replies) == 0 {
		return "", &common.UpstreamError{Provider: "openai", Transient: true, Err: errors.New("exhausted")}
	}
	reply := f.replies[0]
	f.replies = f.replies[1:]
	return reply.content, reply.err
}

func explainRequest() *ExplainRequest {
	return &ExplainRequest{
		From: "butter",
		To:   "olive oil",
		Recipe: RecipeContext{
			Title:   "Margherita Flatbread",
			Cuisine: "Italian",
			Steps:   []string{"Stretch the dough", "Bake until blistered"},
		},
	}
}

func TestExplainSuccess(t *testing.T) {
	gen := &fakeGenerator{
		models:  []string{"gpt-4o-mini"},
		replies: []fakeReply{{content: "  Brush the dough with olive oil instead of melted butter before baking.  "}},
	}
	svc := NewService(gen)

	resp := svc.Explain(context.Background(), explainRequest())
	assert.Equal(t, "Brush the dough with olive oil instead of melted butter before baking.", resp.Delta)
}

func TestExplainFallsBackWhenDisabled(t *testing.T) {
	svc := NewService(nil)

	resp := svc.Explain(context.Background(), explainRequest())
	assert.Equal(t, "Swap butter for olive oil and adjust seasoning to taste.", resp.Delta)
}

func TestExplainFallsBackOnTransientExhaustion(t *testing.T) {
	gen := &fakeGenerator{models: []string{"gpt-4o-mini", "gpt-4o"}}
	svc := NewService(gen)

	resp := svc.Explain(context.Background(), explainRequest())
	assert.Equal(t, "Swap butter for olive oil and adjust seasoning to taste.", resp.Delta)
	assert.Equal(t, 2, gen.calls, "transient failures try every model before falling back")
}

func TestExplainPermanentFailureStopsRetrying(t *testing.T) {
	gen := &fakeGenerator{
		models: []string{"gpt-4o-mini", "gpt-4o"},
		replies: []fakeReply{
			{err: &common.UpstreamError{Provider: "openai", Status: 401, Transient: false, Err: errors.New("invalid key")}},
		},
	}
	svc := NewService(gen)

	resp := svc.Explain(context.Background(), explainRequest())
	assert.Equal(t, "Swap butter for olive oil and adjust seasoning to taste.", resp.Delta)
	assert.Equal(t, 1, gen.calls)
}

func TestExplainEmptyReplyFallsThrough(t *testing.T) {
	gen := &fakeGenerator{
		models: []string{"gpt-4o-mini", "gpt-4o"},
		replies: []fakeReply{
			{content: "   "},
			{content: "Use a touch less oil than the butter called for."},
		},
	}
	svc := NewService(gen)

	resp := svc.Explain(context.Background(), explainRequest())
	assert.Equal(t, "Use a touch less oil than the butter called for.", resp.Delta)
}

func TestOptions(t *testing.T) {
	t.Run("diet specific entries win", func(t *testing.T) {
		options := Options("soy sauce", []string{"gluten-free"})
		require.NotEmpty(t, options)
		assert.Equal(t, "tamari", options[0].Option)
		assert.Equal(t, "Swap 1:1 for soy sauce.", options[0].Hint)
	})

	t.Run("general entries always appended", func(t *testing.T) {
		options := Options("buttermilk", nil)
		require.Len(t, options, 1)
		assert.Equal(t, "milk + lemon juice", options[0].Option)
	})

	t.Run("duplicates collapse across categories", func(t *testing.T) {
		options := Options("butter", []string{"vegan", "dairy-free"})
		names := make([]string, 0, len(options))
		for _, option := range options {
			names = append(names, option.Option)
		}
		assert.Equal(t, []string{"vegan butter", "olive oil"}, names)
	})

	t.Run("capped at three", func(t *testing.T) {
		options := Options("soy sauce", []string{"gluten-free", "vegetarian"})
		assert.LessOrEqual(t, len(options), 3)
	})

	t.Run("case insensitive lookups", func(t *testing.T) {
		options := Options("BUTTER", []string{"VEGAN"})
		require.NotEmpty(t, options)
		assert.Equal(t, "vegan butter", options[0].Option)
	})

	t.Run("unknown ingredient yields empty", func(t *testing.T) {
		assert.Empty(t, Options("dragonfruit", []string{"vegan"}))
	})
}
