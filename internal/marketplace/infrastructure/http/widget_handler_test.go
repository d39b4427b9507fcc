package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	mocks "github.com/davidtimmons/pragmatic-architecture/gen/mocks/marketplace"
	"github.com/davidtimmons/pragmatic-architecture/internal/marketplace/domain"
)

func newWidgetTestContext(t *testing.T, method string, body interface{}, widgetId string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	writer := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(writer)

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	c.Request = httptest.NewRequest(method, "/", reader)
	if widgetId != "" {
		c.Params = gin.Params{{Key: WidgetIdKey, Value: widgetId}}
	}

	return c, writer
}

func TestWidgetHandler_CreateWidget(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		requestBody    interface{}
		expectedStatus int

		prepareFn       func(t *testing.T, ctrl *gomock.Controller) domain.WidgetService
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name: "successful create",
			requestBody: map[string]interface{}{
				"id_seller":   1,
				"description": "A fine widget",
				"price":       "5",
			},
			expectedStatus: http.StatusCreated,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.WidgetService {
				mockService := mocks.NewMockWidgetService(ctrl)
				mockService.EXPECT().
					CreateWidget(gomock.Any(), domain.NewWidget{
						SellerId:    1,
						Description: "A fine widget",
						Price:       decimal.RequireFromString("5"),
					}).
					Return(3, nil).
					Times(1)

				return mockService
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var envelope response
				err := json.Unmarshal(recorder.Body.Bytes(), &envelope)
				assert.NoError(t, err)
				assert.Equal(t, map[string]interface{}{"id": float64(3)}, envelope.Data)
			},
		},
		{
			name: "invalid_request_body",
			requestBody: map[string]interface{}{
				"description": "A fine widget",
			},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.WidgetService {
				return mocks.NewMockWidgetService(ctrl)
			},
		},
		{
			name: "negative_price",
			requestBody: map[string]interface{}{
				"id_seller":   1,
				"description": "A fine widget",
				"price":       "-5",
			},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.WidgetService {
				return mocks.NewMockWidgetService(ctrl)
			},
		},
		{
			name: "storage_failure_maps_to_500",
			requestBody: map[string]interface{}{
				"id_seller":   1,
				"description": "A fine widget",
				"price":       "5",
			},
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.WidgetService {
				mockService := mocks.NewMockWidgetService(ctrl)
				mockService.EXPECT().
					CreateWidget(gomock.Any(), gomock.Any()).
					Return(0, domain.NewFailure(domain.FailedToCreateWidget, assert.AnError))

				return mockService
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockService := tt.prepareFn(t, ctrl)
			handler := NewWidgetHandler(mockService, mocks.NewMockWidgetPurchaser(ctrl))

			c, writer := newWidgetTestContext(t, http.MethodPost, tt.requestBody, "")
			handler.CreateWidget(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}

func TestWidgetHandler_GetWidget(t *testing.T) {
	t.Parallel()

	expectedWidget := domain.Widget{
		Id:          3,
		SellerId:    1,
		Description: "A fine widget",
		Price:       decimal.NewFromInt(5),
		Purchased:   false,
	}

	type testCase struct {
		name           string
		widgetId       string
		expectedStatus int

		prepareFn       func(t *testing.T, ctrl *gomock.Controller) domain.WidgetService
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name:           "successful get",
			widgetId:       "3",
			expectedStatus: http.StatusOK,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.WidgetService {
				mockService := mocks.NewMockWidgetService(ctrl)
				mockService.EXPECT().
					GetWidget(gomock.Any(), 3).
					Return(expectedWidget, nil).
					Times(1)

				return mockService
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var envelope struct {
					Data domain.Widget `json:"data"`
				}
				err := json.Unmarshal(recorder.Body.Bytes(), &envelope)
				assert.NoError(t, err)
				assert.Equal(t, expectedWidget.Description, envelope.Data.Description)
				assert.True(t, expectedWidget.Price.Equal(envelope.Data.Price))
				assert.False(t, envelope.Data.Purchased)
			},
		},
		{
			name:           "non_numeric_id",
			widgetId:       "abc",
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.WidgetService {
				return mocks.NewMockWidgetService(ctrl)
			},
		},
		{
			name:           "missing_widget_maps_to_500",
			widgetId:       "3",
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.WidgetService {
				mockService := mocks.NewMockWidgetService(ctrl)
				mockService.EXPECT().
					GetWidget(gomock.Any(), 3).
					Return(domain.Widget{}, domain.NewFailure(domain.FailedToRetrieveWidget, nil))

				return mockService
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockService := tt.prepareFn(t, ctrl)
			handler := NewWidgetHandler(mockService, mocks.NewMockWidgetPurchaser(ctrl))

			c, writer := newWidgetTestContext(t, http.MethodGet, nil, tt.widgetId)
			handler.GetWidget(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}

func TestWidgetHandler_PurchaseWidget(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		widgetId       string
		requestBody    interface{}
		expectedStatus int

		prepareFn       func(t *testing.T, ctrl *gomock.Controller) domain.WidgetPurchaser
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name:     "successful purchase",
			widgetId: "3",
			requestBody: purchaseWidgetRequestBody{
				BuyerId: 2,
			},
			expectedStatus: http.StatusOK,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.WidgetPurchaser {
				mockPurchaser := mocks.NewMockWidgetPurchaser(ctrl)
				mockPurchaser.EXPECT().
					PurchaseWidget(gomock.Any(), 2, 3).
					Return(nil).
					Times(1)

				return mockPurchaser
			},
		},
		{
			name:           "missing_buyer_id",
			widgetId:       "3",
			requestBody:    map[string]interface{}{},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.WidgetPurchaser {
				return mocks.NewMockWidgetPurchaser(ctrl)
			},
		},
		{
			name:     "non_numeric_widget_id",
			widgetId: "abc",
			requestBody: purchaseWidgetRequestBody{
				BuyerId: 2,
			},
			expectedStatus: http.StatusBadRequest,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.WidgetPurchaser {
				return mocks.NewMockWidgetPurchaser(ctrl)
			},
		},
		{
			name:     "unavailable_widget_maps_to_500_with_reason",
			widgetId: "3",
			requestBody: purchaseWidgetRequestBody{
				BuyerId: 2,
			},
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.WidgetPurchaser {
				mockPurchaser := mocks.NewMockWidgetPurchaser(ctrl)
				mockPurchaser.EXPECT().
					PurchaseWidget(gomock.Any(), 2, 3).
					Return(domain.NewPurchaseFailure(domain.WidgetUnavailable))

				return mockPurchaser
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var envelope response
				err := json.Unmarshal(recorder.Body.Bytes(), &envelope)
				assert.NoError(t, err)
				assert.Equal(t, "This widget has already been purchased", envelope.Message)
			},
		},
		{
			name:     "unexpected_error_hides_details",
			widgetId: "3",
			requestBody: purchaseWidgetRequestBody{
				BuyerId: 2,
			},
			expectedStatus: http.StatusInternalServerError,

			prepareFn: func(t *testing.T, ctrl *gomock.Controller) domain.WidgetPurchaser {
				mockPurchaser := mocks.NewMockWidgetPurchaser(ctrl)
				mockPurchaser.EXPECT().
					PurchaseWidget(gomock.Any(), 2, 3).
					Return(assert.AnError)

				return mockPurchaser
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var envelope response
				err := json.Unmarshal(recorder.Body.Bytes(), &envelope)
				assert.NoError(t, err)
				assert.Equal(t, "internal server error", envelope.Message)
			},
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			mockPurchaser := tt.prepareFn(t, ctrl)
			handler := NewWidgetHandler(mocks.NewMockWidgetService(ctrl), mockPurchaser)

			c, writer := newWidgetTestContext(t, http.MethodPost, tt.requestBody, tt.widgetId)
			handler.PurchaseWidget(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}
