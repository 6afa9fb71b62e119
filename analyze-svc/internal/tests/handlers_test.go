package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "review-insights/analyze-svc/internal/api/http"
	"review-insights/analyze-svc/internal/domain"
	"review-insights/analyze-svc/internal/mocks"

	"github.com/stretchr/testify/assert"
)

func TestHandler_getAnalysis(t *testing.T) {
	mockSvc := mocks.NewAnalyzeServiceInterface(t)
	router := httpapi.NewRouter(httpapi.NewHandler(mockSvc))

	tests := []struct {
		name         string
		path         string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			path: "/analyze/3",
			prepareMocks: func() {
				mockSvc.On("Get", "3").Return(&domain.Analysis{
					RestaurantID: 3,
					Payload:      json.RawMessage(`{"restaurant_id":3,"restaurant_name":"کافه"}`),
				}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"restaurant_id":3,"restaurant_name":"کافه"}`,
		},
		{
			name: "invalid_id",
			path: "/analyze/abc",
			prepareMocks: func() {
				mockSvc.On("Get", "abc").Return(nil, domain.ErrInvalidID).Once()
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"Invalid ID"}` + "\n",
		},
		{
			name: "not_found",
			path: "/analyze/999",
			prepareMocks: func() {
				mockSvc.On("Get", "999").Return(nil, domain.ErrNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Restaurant not found"}` + "\n",
		},
		{
			name: "store_failure",
			path: "/analyze/5",
			prepareMocks: func() {
				mockSvc.On("Get", "5").Return(nil, errors.New("db down")).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "unknown_path",
			path:         "/restaurants",
			prepareMocks: func() {},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Invalid endpoint"}` + "\n",
		},
		{
			name:         "missing_id",
			path:         "/analyze/",
			prepareMocks: func() {},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"Invalid endpoint"}` + "\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest(http.MethodGet, testCase.path, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
			if testCase.expectedBody != "" {
				assert.Equal(t, testCase.expectedBody, recorder.Body.String())
			}
		})
	}
}
