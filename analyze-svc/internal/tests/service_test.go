package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"review-insights/analyze-svc/internal/domain"
	"review-insights/analyze-svc/internal/mocks"
	"review-insights/analyze-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeService_Get(t *testing.T) {
	store := mocks.NewAnalysisStore(t)
	svc := service.NewAnalyzeService(store, nil)

	tests := []struct {
		name          string
		idParam       string
		prepareMocks  func()
		expectedError error
	}{
		{
			name:    "found",
			idParam: "1",
			prepareMocks: func() {
				store.On("GetAnalysis", 1).Return(&domain.Analysis{RestaurantID: 1, Payload: json.RawMessage(`{}`)}, nil).Once()
			},
		},
		{
			name:    "negative_id_is_looked_up",
			idParam: "-4",
			prepareMocks: func() {
				store.On("GetAnalysis", -4).Return(nil, domain.ErrNotFound).Once()
			},
			expectedError: domain.ErrNotFound,
		},
		{
			name:          "not_a_number",
			idParam:       "1.5",
			prepareMocks:  func() {},
			expectedError: domain.ErrInvalidID,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			analysis, err := svc.Get(testCase.idParam)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, analysis.RestaurantID)
		})
	}
}

func TestAnalyzeService_ReloadPublishesChanges(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewReloadableStore(t)
	publisher := mocks.NewUpdatePublisher(t)

	store.On("Reload").Return([]int{2, 5}, nil).Once()
	publisher.On("PublishUpdate", ctx, mock.MatchedBy(func(msg domain.AnalysisUpdate) bool {
		return msg.Type == domain.EventAnalysisUpdated && msg.RestaurantID == 2
	})).Return(nil).Once()
	publisher.On("PublishUpdate", ctx, mock.MatchedBy(func(msg domain.AnalysisUpdate) bool {
		return msg.Type == domain.EventAnalysisUpdated && msg.RestaurantID == 5
	})).Return(errors.New("broker down")).Once()

	changed, err := service.NewAnalyzeService(store, publisher).Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, changed)
}

func TestAnalyzeService_ReloadErrors(t *testing.T) {
	store := mocks.NewReloadableStore(t)
	store.On("Reload").Return(nil, errors.New("bad file")).Once()

	_, err := service.NewAnalyzeService(store, nil).Reload(context.Background())
	assert.Error(t, err)
}

func TestAnalyzeService_ReloadNotSupported(t *testing.T) {
	store := mocks.NewAnalysisStore(t)

	changed, err := service.NewAnalyzeService(store, nil).Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, changed)
}
