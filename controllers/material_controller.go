package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/simplethings/baubuero-api/logger"
	"github.com/simplethings/baubuero-api/metrics"
	"github.com/simplethings/baubuero-api/models"
	"github.com/simplethings/baubuero-api/repositories"
	"go.uber.org/zap"
)

// MaterialForm represents the material create/edit form submission.
// Quantity is a pointer so a missing field is distinguishable from an
// explicit zero stock.
type MaterialForm struct {
	ArticleNumber   string `form:"artikelnummer" binding:"required"`
	Name            string `form:"name" binding:"required"`
	Description     string `form:"beschreibung"`
	Quantity        *int   `form:"menge" binding:"required,gte=0"`
	Unit            string `form:"einheit" binding:"required"`
	MinStock        int    `form:"mindestbestand" binding:"gte=0"`
	Supplier        string `form:"lieferant"`
	SupplierContact string `form:"lieferant_kontakt"`
}

// OrderForm represents the bestellen form submission
type OrderForm struct {
	Quantity *int `form:"menge" binding:"required,gt=0"`
}

// MaterialController handles the inventory and ordering routes.
type MaterialController struct {
	materials *repositories.MaterialRepository
	orders    *repositories.OrderRepository
}

func NewMaterialController(materials *repositories.MaterialRepository, orders *repositories.OrderRepository) *MaterialController {
	return &MaterialController{materials: materials, orders: orders}
}

// List handles GET /material - lists all materials
func (mc *MaterialController) List(c *gin.Context) {
	materials, err := mc.materials.List(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load materials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    materials,
	})
}

// Create handles POST /material - creates a material and redirects to the
// list. All numeric fields are validated up front; a non-numeric quantity
// is a client error, not a crash.
func (mc *MaterialController) Create(c *gin.Context) {
	var form MaterialForm
	if err := c.ShouldBind(&form); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	material := models.Material{
		ArticleNumber:   form.ArticleNumber,
		Name:            form.Name,
		Description:     form.Description,
		Quantity:        *form.Quantity,
		Unit:            form.Unit,
		MinStock:        form.MinStock,
		Supplier:        form.Supplier,
		SupplierContact: form.SupplierContact,
	}

	if err := mc.materials.Create(c.Request.Context(), &material); err != nil {
		logger.FromContext(c).Error("Failed to create material", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create material")
		return
	}

	metrics.RecordOperation("material", "create")
	c.Redirect(http.StatusFound, "/material")
}

// Edit handles GET /material/edit/:id - returns the material to edit
func (mc *MaterialController) Edit(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	material, err := mc.materials.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Material not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    material,
	})
}

// Update handles POST /material/edit/:id - overwrites all material fields
func (mc *MaterialController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	material, err := mc.materials.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Material not found")
		return
	}

	var form MaterialForm
	if err := c.ShouldBind(&form); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	material.ArticleNumber = form.ArticleNumber
	material.Name = form.Name
	material.Description = form.Description
	material.Quantity = *form.Quantity
	material.Unit = form.Unit
	material.MinStock = form.MinStock
	material.Supplier = form.Supplier
	material.SupplierContact = form.SupplierContact

	if err := mc.materials.Update(c.Request.Context(), material); err != nil {
		logger.FromContext(c).Error("Failed to update material", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update material")
		return
	}

	metrics.RecordOperation("material", "update")
	c.Redirect(http.StatusFound, "/material")
}

// ShowOrderForm handles GET /material/bestellen/:id - returns the material
// an order would be placed for, with its past orders newest first
func (mc *MaterialController) ShowOrderForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	material, err := mc.materials.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Material not found")
		return
	}

	orders, err := mc.orders.ListByMaterial(c.Request.Context(), material.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"material":     material,
			"bestellungen": orders,
		},
	})
}

// PlaceOrder handles POST /material/bestellen/:id - records a purchase
// order. The on-hand quantity of the material is not touched: stock and
// ordering are decoupled, deliveries are booked via the edit form.
func (mc *MaterialController) PlaceOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	material, err := mc.materials.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Material not found")
		return
	}

	var form OrderForm
	if err := c.ShouldBind(&form); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	order := models.Order{
		MaterialID: material.ID,
		Quantity:   *form.Quantity,
		OrderedAt:  time.Now(),
		Status:     models.OrderStatusNew,
	}

	if err := mc.orders.Create(c.Request.Context(), &order); err != nil {
		logger.FromContext(c).Error("Failed to create order", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create order")
		return
	}

	logger.FromContext(c).Info("Order placed",
		zap.Uint("material_id", material.ID),
		zap.Int("quantity", order.Quantity))
	metrics.RecordOperation("order", "create")
	c.Redirect(http.StatusFound, "/material")
}

// Delete handles POST /material/delete/:id - deletes a material. Materials
// with recorded orders cannot be deleted, otherwise those orders would
// point nowhere.
func (mc *MaterialController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	material, err := mc.materials.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Material not found")
		return
	}

	orderCount, err := mc.orders.CountByMaterial(c.Request.Context(), material.ID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to check dependent orders")
		return
	}
	if orderCount > 0 {
		respondError(c, http.StatusConflict, "CONFLICT", "Material still has recorded orders")
		return
	}

	if err := mc.materials.Delete(c.Request.Context(), material.ID); err != nil {
		logger.FromContext(c).Error("Failed to delete material", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete material")
		return
	}

	metrics.RecordOperation("material", "delete")
	c.Redirect(http.StatusFound, "/material")
}
