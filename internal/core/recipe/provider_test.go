package recipe

import (
	"context"
	"errors"
	"testing"

	"table-talk/internal/infrastructure/config"
	"table-talk/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingProvider 模擬外部來源整站掛掉的情況
type failingProvider struct{}

func (p *failingProvider) Name() string { return "failing" }

func (p *failingProvider) Search(ctx context.Context, params SearchParams) ([]Summary, error) {
	return nil, &common.UpstreamError{Provider: "failing", Status: 503, Transient: true, Err: errors.New("service unavailable")}
}

func (p *failingProvider) GetByID(ctx context.Context, id string) (*Recipe, error) {
	return nil, &common.UpstreamError{Provider: "failing", Status: 503, Transient: true, Err: errors.New("service unavailable")}
}

func TestFallbackProviderSearchFallsBackToLocal(t *testing.T) {
	provider := WithLocalFallback(&failingProvider{}, NewLocalProvider())

	results, err := provider.Search(context.Background(), SearchParams{People: 2})
	require.NoError(t, err, "upstream outages never surface to the caller")
	assert.NotEmpty(t, results, "local dataset serves the same query")
}

func TestFallbackProviderDetailFallsBackToLocal(t *testing.T) {
	provider := WithLocalFallback(&failingProvider{}, NewLocalProvider())

	found, err := provider.GetByID(context.Background(), "shakshuka-skillet")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Shakshuka Skillet", found.Title)
}

// emptyProvider 模擬外部來源正常回應但查無此食譜的情況
type emptyProvider struct{}

func (p *emptyProvider) Name() string { return "empty" }

func (p *emptyProvider) Search(ctx context.Context, params SearchParams) ([]Summary, error) {
	return nil, nil
}

func (p *emptyProvider) GetByID(ctx context.Context, id string) (*Recipe, error) {
	return nil, nil
}

func TestFallbackProviderDetailFallsBackOnNotFound(t *testing.T) {
	provider := WithLocalFallback(&emptyProvider{}, NewLocalProvider())

	// 本地資料的 ID 在外部來源查不到，應繼續往本地找
	found, err := provider.GetByID(context.Background(), "ginger-tofu-stirfry")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Ginger Tofu Stir-Fry", found.Title)

	// 兩邊都查不到的 ID 仍回傳 (nil, nil)
	missing, err := provider.GetByID(context.Background(), "no-such-recipe")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFallbackProviderName(t *testing.T) {
	provider := WithLocalFallback(&failingProvider{}, NewLocalProvider())
	assert.Equal(t, "failing", provider.Name())
}

func TestSelectProviderPriority(t *testing.T) {
	t.Run("spoonacular first", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Providers.SpoonacularAPIKey = "key"
		cfg.Providers.EdamamAppID = "id"
		cfg.Providers.EdamamAppKey = "key"
		assert.Equal(t, "spoonacular", SelectProvider(cfg).Name())
	})

	t.Run("edamam second", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Providers.EdamamAppID = "id"
		cfg.Providers.EdamamAppKey = "key"
		assert.Equal(t, "edamam", SelectProvider(cfg).Name())
	})

	t.Run("local last", func(t *testing.T) {
		cfg := &config.Config{}
		assert.Equal(t, "local", SelectProvider(cfg).Name())
	})
}
