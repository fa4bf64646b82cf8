package router

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The committed OpenAPI document is served verbatim by the swagger
// middleware; keep it structurally valid and in sync with the routes
// registered here.
func TestOpenAPIDocumentIsValid(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("../../../public/docs/v1/openapi.yml")
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	for _, path := range []string{
		"/auth/register",
		"/auth/login",
		"/auth/refresh",
		"/auth/me",
		"/users/me/preferences",
		"/users/me/saved-itineraries",
		"/api/v1/recommendations",
		"/api/v1/travel-styles",
		"/api/v1/start-locations",
		"/api/v1/budget-ranges",
		"/api/v1/locations",
		"/api/v1/combinations/{id}",
		"/admin/locations",
		"/admin/users",
	} {
		assert.NotNil(t, doc.Paths.Find(path), "path %s missing from openapi.yml", path)
	}
}
