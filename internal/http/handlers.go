package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"foodkiosk/internal/domain"
	"foodkiosk/internal/repository"
	"foodkiosk/internal/service"
)

type Server struct {
	engine   *gin.Engine
	menu     *service.MenuService
	orders   *service.OrderService
	receipts *service.ReceiptService
	log      logrus.FieldLogger
}

func NewServer(menu *service.MenuService, orders *service.OrderService, receipts *service.ReceiptService, log logrus.FieldLogger) *Server {
	r := gin.New()
	r.Use(requestLogger(log), gin.Recovery())
	s := &Server{engine: r, menu: menu, orders: orders, receipts: receipts, log: log}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	v1 := s.engine.Group("/api/v1")
	{
		menu := v1.Group("/menu")
		menu.POST("", s.createMenuItem)
		menu.GET(":id", s.getMenuItem)
		menu.PUT(":id", s.updateMenuItem)
		menu.DELETE(":id", s.deleteMenuItem)
		menu.GET("", s.listMenu)

		orders := v1.Group("/orders")
		orders.POST("", s.createOrder)
		orders.GET(":id", s.getOrder)
		orders.DELETE(":id", s.deleteOrder)
		orders.POST(":id/items", s.addOrderItem)
		orders.DELETE(":id/items/:itemId", s.removeOrderItem)
		orders.DELETE(":id/items", s.clearOrderItems)
		orders.PUT(":id/discount", s.setDiscount)
		orders.GET(":id/receipts", s.listOrderReceipts)

		receipts := v1.Group("/receipts")
		receipts.POST("", s.issueReceipt)
		receipts.GET(":id", s.getReceipt)
		receipts.GET(":id/text", s.renderReceipt)
	}
}

// Menu handlers
type menuItemReq struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// @Summary Create menu item
// @Tags menu
// @Accept json
// @Produce json
// @Param input body menuItemReq true "Menu item"
// @Success 201 {object} domain.MenuItem
// @Failure 400 {object} map[string]string
// @Router /menu [post]
func (s *Server) createMenuItem(c *gin.Context) {
	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	m, err := s.menu.Create(c, domain.MenuItem{Name: req.Name, Price: req.Price, Description: req.Description})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// @Summary Get menu item by id
// @Tags menu
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} domain.MenuItem
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /menu/{id} [get]
func (s *Server) getMenuItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	m, err := s.menu.GetByID(c, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary Update menu item
// @Tags menu
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Param input body menuItemReq true "Update"
// @Success 200 {object} domain.MenuItem
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /menu/{id} [put]
func (s *Server) updateMenuItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req menuItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	m, err := s.menu.Update(c, domain.MenuItem{ID: id, Name: req.Name, Price: req.Price, Description: req.Description})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary Delete menu item
// @Tags menu
// @Param id path int true "Menu item ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /menu/{id} [delete]
func (s *Server) deleteMenuItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.menu.Delete(c, id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List menu
// @Tags menu
// @Produce json
// @Param q query string false "Name contains"
// @Param min_price query number false "Min price"
// @Param max_price query number false "Max price"
// @Success 200 {array} domain.MenuItem
// @Router /menu [get]
func (s *Server) listMenu(c *gin.Context) {
	var f repository.MenuFilter
	if q := c.Query("q"); q != "" {
		f.NameSubstring = q
	}
	if v := c.Query("min_price"); v != "" {
		if x, err := decimal.NewFromString(v); err == nil {
			f.MinPrice = &x
		}
	}
	if v := c.Query("max_price"); v != "" {
		if x, err := decimal.NewFromString(v); err == nil {
			f.MaxPrice = &x
		}
	}
	list, err := s.menu.List(c, f)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Order handlers
type createOrderReq struct {
	Details      string          `json:"details"`
	Discount     decimal.Decimal `json:"discount"`
	DiscountType string          `json:"discount_type"`
}

// @Summary Create order
// @Tags orders
// @Accept json
// @Produce json
// @Param input body createOrderReq true "Order"
// @Success 201 {object} domain.OrderView
// @Failure 400 {object} map[string]string
// @Router /orders [post]
func (s *Server) createOrder(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	o, err := s.orders.CreateOrder(c, req.Details, req.Discount, req.DiscountType)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// @Summary Get order by id
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} domain.OrderView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (s *Server) getOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	o, err := s.orders.GetOrder(c, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// @Summary Delete order
// @Tags orders
// @Param id path int true "Order ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [delete]
func (s *Server) deleteOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.orders.DeleteOrder(c, id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type addItemReq struct {
	MenuItemID    int64  `json:"menu_item_id"`
	Modifications string `json:"modifications"`
}

// @Summary Add item to order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param input body addItemReq true "Menu item and modifications"
// @Success 201 {object} domain.OrderItem
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/items [post]
func (s *Server) addOrderItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	item, err := s.orders.AddItem(c, id, req.MenuItemID, req.Modifications)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// @Summary Remove item from order
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Param itemId path int true "Order item ID"
// @Success 200 {object} domain.OrderView
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/items/{itemId} [delete]
func (s *Server) removeOrderItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}
	o, err := s.orders.RemoveItem(c, id, itemID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// @Summary Clear order items
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} domain.OrderView
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/items [delete]
func (s *Server) clearOrderItems(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	o, err := s.orders.ClearItems(c, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

type discountReq struct {
	Discount     decimal.Decimal `json:"discount"`
	DiscountType string          `json:"discount_type"`
}

// @Summary Set order discount
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param input body discountReq true "Discount"
// @Success 200 {object} domain.OrderView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/discount [put]
func (s *Server) setDiscount(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req discountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	o, err := s.orders.SetDiscount(c, id, req.Discount, req.DiscountType)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// @Summary List receipts of an order
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {array} domain.Receipt
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/receipts [get]
func (s *Server) listOrderReceipts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	list, err := s.receipts.ListForOrder(c, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Receipt handlers
type issueReceiptReq struct {
	OrderID     int64  `json:"order_id"`
	CashierName string `json:"cashier_name"`
	Message     string `json:"message"`
}

// @Summary Issue receipt
// @Tags receipts
// @Accept json
// @Produce json
// @Param input body issueReceiptReq true "Receipt"
// @Success 201 {object} domain.Receipt
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /receipts [post]
func (s *Server) issueReceipt(c *gin.Context) {
	var req issueReceiptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	r, err := s.receipts.Issue(c, req.OrderID, req.CashierName, req.Message)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// @Summary Get receipt by id
// @Tags receipts
// @Produce json
// @Param id path int true "Receipt ID"
// @Success 200 {object} domain.Receipt
// @Failure 404 {object} map[string]string
// @Router /receipts/{id} [get]
func (s *Server) getReceipt(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	r, err := s.receipts.Get(c, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// @Summary Render receipt as text
// @Tags receipts
// @Produce plain
// @Param id path int true "Receipt ID"
// @Success 200 {string} string
// @Failure 404 {object} map[string]string
// @Router /receipts/{id}/text [get]
func (s *Server) renderReceipt(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	text, err := s.receipts.Render(c, id)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.String(http.StatusOK, text)
}

// pathID parses a path parameter and writes a 400 when it is not an integer.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func (s *Server) fail(c *gin.Context, err error) {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		s.log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidValue),
		errors.Is(err, domain.ErrInvalidItemType):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
