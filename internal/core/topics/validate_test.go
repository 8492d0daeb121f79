package topics

import (
	"testing"

	"table-talk/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *Request {
	return &Request{Vibe: "Friends", People: 4}
}

func TestValidateRequestPeopleBounds(t *testing.T) {
	tests := []struct {
		name   string
		people int
		valid  bool
	}{
		{"below minimum", 1, false},
		{"at minimum", 2, true},
		{"at maximum", 12, true},
		{"above maximum", 13, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.People = tt.people
			err := ValidateRequest(req)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, common.IsValidationError(err))
			}
		})
	}
}

func TestValidateRequestDefaultsPeople(t *testing.T) {
	req := validRequest()
	req.People = 0
	require.NoError(t, ValidateRequest(req))
	assert.Equal(t, 2, req.People)
}

func TestValidateRequestUnknownVibeBecomesTheme(t *testing.T) {
	req := &Request{Vibe: "Italian", People: 14}
	require.NoError(t, ValidateRequest(req), "free themes use the loose 1-16 range")
	assert.Equal(t, "Italian", req.Theme)
	assert.Empty(t, req.Vibe)
}

func TestValidateRequestThemeTooLong(t *testing.T) {
	req := &Request{Theme: "this theme label is way too long to accept", People: 4}
	err := ValidateRequest(req)
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))
}

func TestValidateRequestHint(t *testing.T) {
	t.Run("edge punctuation stripped", func(t *testing.T) {
		req := validRequest()
		req.DietaryOrIngredient = "  ,no peanuts!  "
		require.NoError(t, ValidateRequest(req))
		assert.Equal(t, "no peanuts", req.DietaryOrIngredient)
	})

	t.Run("too long rejected", func(t *testing.T) {
		req := validRequest()
		for i := 0; i < 70; i++ {
			req.DietaryOrIngredient += "x"
		}
		err := ValidateRequest(req)
		require.Error(t, err)
		assert.True(t, common.IsValidationError(err))
	})

	t.Run("charset enforced", func(t *testing.T) {
		req := validRequest()
		req.DietaryOrIngredient = "no peanuts <script>"
		err := ValidateRequest(req)
		require.Error(t, err)
		assert.True(t, common.IsValidationError(err))
	})

	t.Run("allowed characters pass", func(t *testing.T) {
		req := validRequest()
		req.DietaryOrIngredient = "gluten-free, mom's recipe"
		assert.NoError(t, ValidateRequest(req))
	})
}

func TestValidateRequestDenylistFailsClosed(t *testing.T) {
	req := validRequest()
	req.DietaryOrIngredient = "contains slur1 somewhere"
	err := ValidateRequest(req)
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err), "denylist hit is a hard rejection, never sanitized")

	// 黑名單也涵蓋主題與食譜欄位
	req = &Request{Theme: "slur2 night", People: 4}
	assert.Error(t, ValidateRequest(req))
}

func TestValidateRequestMissingContext(t *testing.T) {
	err := ValidateRequest(&Request{People: 4})
	require.Error(t, err)
	assert.True(t, common.IsValidationError(err))
}

func TestCanonicalVibe(t *testing.T) {
	assert.Equal(t, VibeFamily, CanonicalVibe("family"))
	assert.Equal(t, VibeKids, CanonicalVibe("KIDS"))
	assert.Equal(t, Vibe(""), CanonicalVibe("brunch"))
	assert.True(t, IsKnownVibe("colleagues"))
	assert.False(t, IsKnownVibe("strangers"))
}
