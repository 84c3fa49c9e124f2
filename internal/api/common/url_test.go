package common

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAndValidateURLParam(t *testing.T) {
	t.Parallel()

	routerTests := []struct {
		name       string
		paramValue string
		wantValue  string
		wantErr    bool
		wantErrMsg string
	}{
		{
			name:       "plain slug",
			paramValue: "davao-pomelo",
			wantValue:  "davao-pomelo",
		},
		{
			name:       "slug with digits",
			paramValue: "carabao-mango-2",
			wantValue:  "carabao-mango-2",
		},
		{
			name:       "url-encoded at symbol",
			paramValue: "farm%40bukidnon",
			wantValue:  "farm@bukidnon",
		},
		{
			name:       "double-encoded percent",
			paramValue: "fifty%2525",
			wantValue:  "fifty%", // chi decodes %25 to %, then we decode %25 to %
		},
		{
			name:       "empty string",
			paramValue: "",
			wantErr:    true,
			wantErrMsg: "idOrSlug cannot be empty",
		},
		{
			name:       "url-encoded space only",
			paramValue: "%20",
			wantErr:    true,
			wantErrMsg: "idOrSlug cannot be empty",
		},
		{
			name:       "tab only",
			paramValue: "%09",
			wantErr:    true,
			wantErrMsg: "idOrSlug cannot be empty",
		},
		{
			name:       "space in middle",
			paramValue: "sweet%20potato",
			wantErr:    true,
			wantErrMsg: "idOrSlug cannot contain whitespace",
		},
		{
			name:       "newline at end",
			paramValue: "kamote%0A",
			wantErr:    true,
			wantErrMsg: "idOrSlug cannot contain whitespace",
		},
	}

	for _, tt := range routerTests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := chi.NewRouter()
			router.Get("/{idOrSlug}", func(_ http.ResponseWriter, r *http.Request) {
				value, err := GetAndValidateURLParam(r, "idOrSlug")

				if tt.wantErr {
					require.Error(t, err)
					assert.Equal(t, tt.wantErrMsg, err.Error())
				} else {
					require.NoError(t, err)
					assert.Equal(t, tt.wantValue, value)
				}
			})

			req, err := http.NewRequest("GET", "/"+tt.paramValue, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
		})
	}

	// chi will not route these, so call directly
	directTests := []struct {
		name       string
		paramValue string
	}{
		{name: "incomplete escape", paramValue: "mango%2"},
		{name: "invalid hex", paramValue: "mango%ZZ"},
		{name: "bare percent", paramValue: "mango%"},
	}

	for _, tt := range directTests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := withParam(httptest.NewRequest("GET", "/test", nil), "idOrSlug", tt.paramValue)
			_, err := GetAndValidateURLParam(req, "idOrSlug")
			require.Error(t, err)
			assert.Equal(t, "invalid URL encoding in idOrSlug", err.Error())
		})
	}
}

func TestGetUUIDParam(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	tests := []struct {
		name    string
		value   string
		want    uuid.UUID
		wantErr string
	}{
		{name: "valid", value: id.String(), want: id},
		{name: "not a uuid", value: "pomelo", wantErr: "id must be a valid UUID"},
		{name: "empty", value: "", wantErr: "id cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := withParam(httptest.NewRequest("GET", "/test", nil), "id", tt.value)
			got, err := GetUUIDParam(req, "id")
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryHelpers(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/products?limit=12&min_price=5000&in_stock=true&bad=x", nil)

	limit, ok, err := QueryInt(req, "limit")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 12, limit)

	_, ok, err = QueryInt(req, "offset")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = QueryInt(req, "bad")
	require.EqualError(t, err, "invalid bad parameter: x")

	minPrice, err := QueryInt64(req, "min_price")
	require.NoError(t, err)
	require.NotNil(t, minPrice)
	assert.Equal(t, int64(5000), *minPrice)

	maxPrice, err := QueryInt64(req, "max_price")
	require.NoError(t, err)
	assert.Nil(t, maxPrice)

	inStock, err := QueryBool(req, "in_stock")
	require.NoError(t, err)
	assert.True(t, inStock)

	_, err = QueryBool(req, "bad")
	require.Error(t, err)
}

func withParam(req *http.Request, name, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(name, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
