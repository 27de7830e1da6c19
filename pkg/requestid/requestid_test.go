package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bootkit/pkg/requestid"
)

func serve(t *testing.T, header string) (ctxID, respID string) {
	t.Helper()
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return ctxID, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		reused bool
	}{
		{"missing header", "", false},
		{"plain id", "abc123", true},
		{"dashes and underscores", "ABC-123_xyz", true},
		{"uuid", "550e8400-e29b-41d4-a716-446655440000", true},
		{"spaces", "test request id", false},
		{"markup", "<script>alert(1)</script>", false},
		{"slashes", "a/b", false},
		{"too long", strings.Repeat("a", 129), false},
		{"max length", strings.Repeat("a", 128), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctxID, respID := serve(t, tt.header)

			require.NotEmpty(t, ctxID)
			assert.Equal(t, ctxID, respID, "context and response agree")
			if tt.reused {
				assert.Equal(t, tt.header, ctxID)
				return
			}
			assert.NotEqual(t, tt.header, ctxID)
			parsed, err := uuid.Parse(ctxID)
			require.NoError(t, err)
			assert.Equal(t, uuid.Version(7), parsed.Version())
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	assert.Empty(t, requestid.FromContext(context.Background()))
	assert.Empty(t, requestid.FromContext(nil)) //nolint:staticcheck // nil context is tolerated
	assert.Equal(t, "id-1", requestid.FromContext(requestid.WithContext(context.Background(), "id-1")))
}

func TestExtractor(t *testing.T) {
	t.Parallel()

	_, ok := requestid.Extractor(context.Background())
	assert.False(t, ok)

	attr, ok := requestid.Extractor(requestid.WithContext(context.Background(), "id-1"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "id-1", attr.Value.String())
}
