package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/davidtimmons/pragmatic-architecture/internal/marketplace/domain"
)

type createWidgetRequestBody struct {
	SellerId    int              `json:"id_seller" binding:"required"`
	Description string           `json:"description" binding:"required"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
}

type purchaseWidgetRequestBody struct {
	BuyerId int `json:"buyer_id" binding:"required"`
}

type WidgetHandler struct {
	widgets   domain.WidgetService
	purchaser domain.WidgetPurchaser
}

func NewWidgetHandler(widgets domain.WidgetService, purchaser domain.WidgetPurchaser) *WidgetHandler {
	return &WidgetHandler{
		widgets:   widgets,
		purchaser: purchaser,
	}
}

func (h *WidgetHandler) CreateWidget(c *gin.Context) {
	var body createWidgetRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if body.Price.IsNegative() {
		respondBadRequest(c, "price cannot be negative")
		return
	}

	id, err := h.widgets.CreateWidget(c, domain.NewWidget{
		SellerId:    body.SellerId,
		Description: body.Description,
		Price:       *body.Price,
	})
	if err != nil {
		handleCoreError(c, err)
		return
	}

	respond(c, http.StatusCreated, "widget created", gin.H{"id": id})
}

func (h *WidgetHandler) GetWidget(c *gin.Context) {
	widgetId, err := strconv.Atoi(c.Param(WidgetIdKey))
	if err != nil {
		respondBadRequest(c, "invalid widget id")
		return
	}

	widget, err := h.widgets.GetWidget(c, widgetId)
	if err != nil {
		handleCoreError(c, err)
		return
	}

	respond(c, http.StatusOK, "widget retrieved", widget)
}

func (h *WidgetHandler) PurchaseWidget(c *gin.Context) {
	widgetId, err := strconv.Atoi(c.Param(WidgetIdKey))
	if err != nil {
		respondBadRequest(c, "invalid widget id")
		return
	}

	var body purchaseWidgetRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if err := h.purchaser.PurchaseWidget(c, body.BuyerId, widgetId); err != nil {
		handleCoreError(c, err)
		return
	}

	respond(c, http.StatusOK, "widget purchased", nil)
}
