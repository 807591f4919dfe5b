package category

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"alcatelz/internal/domain/record"
)

type MockService struct {
	mock.Mock
	record.Servicer
}

func (m *MockService) Categories(ctx context.Context) ([]record.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]record.Category), args.Error(1)
}

func (m *MockService) Category(ctx context.Context, name, query string) (*record.CategoryPage, error) {
	args := m.Called(ctx, name, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*record.CategoryPage), args.Error(1)
}

func setup(t *testing.T) (humatest.TestAPI, *MockService) {
	t.Helper()
	_, api := humatest.New(t)
	svc := new(MockService)
	NewHandler(svc, nil, huma.Middlewares{}).SetupRoutes(api)
	return api, svc
}

func TestHandler_List(t *testing.T) {
	api, svc := setup(t)
	svc.On("Categories", mock.Anything).Return(record.FallbackCategories(), nil)

	resp := api.Get("/api/v1/categories")

	require.Equal(t, http.StatusOK, resp.Code)
	var got listResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Len(t, got.Categories, 20)
	assert.Equal(t, "General", got.Categories[0].Name)
}

func TestHandler_ListError(t *testing.T) {
	api, svc := setup(t)
	svc.On("Categories", mock.Anything).
		Return(nil, fmt.Errorf("categories: %w: %w", record.ErrFetch, errors.New("timeout")))

	resp := api.Get("/api/v1/categories")

	assert.Equal(t, http.StatusBadGateway, resp.Code)
}

func TestHandler_Show(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		catName string
		query   string
		page    *record.CategoryPage
	}{
		{
			name:    "with resources",
			url:     "/api/v1/categories/coding/resources?q=swift",
			catName: "coding",
			query:   "swift",
			page: &record.CategoryPage{
				Category:  record.Category{Name: "coding", Description: record.Describe("coding"), Count: 1},
				Resources: []record.ResourceItem{{RecordName: "r1", Title: "Swift"}},
			},
		},
		{
			name:    "empty category",
			url:     "/api/v1/categories/Art/resources",
			catName: "Art",
			page: &record.CategoryPage{
				Category:  record.Category{Name: "Art", Description: record.Describe("Art")},
				Resources: []record.ResourceItem{},
				Message:   "There are no resources available in the Art category yet. Check back later or contribute your own!",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, svc := setup(t)
			svc.On("Category", mock.Anything, tt.catName, tt.query).Return(tt.page, nil)

			resp := api.Get(tt.url)

			require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
			var got record.CategoryPage
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
			assert.Equal(t, tt.page.Category, got.Category)
			assert.Equal(t, tt.page.Message, got.Message)
			assert.Len(t, got.Resources, len(tt.page.Resources))
			svc.AssertExpectations(t)
		})
	}
}
