package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nmorales-dev/portfolio-backend/models"
)

func TestGetAllTechnologies_DereferencesCategory(t *testing.T) {
	frontend := models.Category{ID: primitive.NewObjectID(), Name: "Frontend"}
	react := models.Technology{ID: primitive.NewObjectID(), Name: "React", Category: frontend.ID}
	h := newTechnologyHandler(
		&fakeTechnologyStore{technologies: []models.Technology{react}},
		&fakeCategoryStore{categories: []models.Category{frontend}},
	)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/technologies", nil)
	h.getAllTechnologies()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	require.Len(t, decoded, 1)

	category, ok := decoded[0]["category"].(map[string]interface{})
	require.True(t, ok, "category must be embedded, not an id")
	assert.Equal(t, "Frontend", category["name"])
}

func TestGetAllTechnologies_Empty(t *testing.T) {
	h := newTechnologyHandler(&fakeTechnologyStore{}, &fakeCategoryStore{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/technologies", nil)
	h.getAllTechnologies()(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
