package handler

import (
	"net/http"
	"strconv"
	"time"

	"kalado/internal/delivery/http/middleware"
	"kalado/internal/delivery/http/response"
	"kalado/internal/domain/entity"
	"kalado/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProductHandler exposes the catalog endpoints.
type ProductHandler struct {
	productUsecase usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(productUsecase usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase}
}

type priceBody struct {
	Amount float64 `json:"amount" validate:"gte=0"`
	Unit   string  `json:"unit" validate:"required"`
}

type createProductRequest struct {
	Title          string    `json:"title" validate:"required,max=255"`
	Description    string    `json:"description"`
	Price          priceBody `json:"price" validate:"required"`
	Category       string    `json:"category"`
	ProductionYear int       `json:"productionYear"`
	Brand          string    `json:"brand"`
	ImageURLs      []string  `json:"imageUrls"`
}

type updateProductRequest struct {
	Title          string    `json:"title" validate:"required,max=255"`
	Description    string    `json:"description"`
	Price          priceBody `json:"price" validate:"required"`
	Category       string    `json:"category"`
	ProductionYear int       `json:"productionYear"`
	Brand          string    `json:"brand"`
	ImageURLs      []string  `json:"imageUrls"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// productBody is the wire shape of a product in responses.
type productBody struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Price          priceBody `json:"price"`
	Category       string    `json:"category"`
	ProductionYear int       `json:"productionYear"`
	Brand          string    `json:"brand"`
	SellerID       int64     `json:"sellerId"`
	ImageURLs      []string  `json:"imageUrls"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toProductBody(product *entity.Product) productBody {
	return productBody{
		ID:          product.ID,
		Title:       product.Title,
		Description: product.Description,
		Price: priceBody{
			Amount: product.Price.Amount,
			Unit:   product.Price.Unit,
		},
		Category:       product.Category,
		ProductionYear: product.ProductionYear,
		Brand:          product.Brand,
		SellerID:       product.SellerID,
		ImageURLs:      product.ImageURLs,
		Status:         product.Status.String(),
		CreatedAt:      product.CreatedAt,
		UpdatedAt:      product.UpdatedAt,
	}
}

func toProductBodyList(products []*entity.Product) []productBody {
	out := make([]productBody, 0, len(products))
	for _, product := range products {
		out = append(out, toProductBody(product))
	}

	return out
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, response.BadRequest(c, "INVALID_ID", "無效的識別碼")
	}

	return id, nil
}

// Create handles POST /api/v1/products.
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "請求格式錯誤")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.productUsecase.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		Title:          req.Title,
		Description:    req.Description,
		Price:          entity.Price{Amount: req.Price.Amount, Unit: req.Price.Unit},
		Category:       req.Category,
		ProductionYear: req.ProductionYear,
		Brand:          req.Brand,
		SellerID:       middleware.CallerID(c),
		ImageURLs:      req.ImageURLs,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toProductBody(product), "商品已建立")
}

// Update handles PUT /api/v1/products/:id.
func (h *ProductHandler) Update(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "請求格式錯誤")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.productUsecase.UpdateProduct(c.Request().Context(), usecase.UpdateProductInput{
		ProductID:      productID,
		ActorID:        middleware.CallerID(c),
		ActorRole:      middleware.CallerRole(c),
		Title:          req.Title,
		Description:    req.Description,
		Price:          entity.Price{Amount: req.Price.Amount, Unit: req.Price.Unit},
		Category:       req.Category,
		ProductionYear: req.ProductionYear,
		Brand:          req.Brand,
		ImageURLs:      req.ImageURLs,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toProductBody(product), "商品已更新")
}

// UpdateStatus handles PATCH /api/v1/products/:id/status.
func (h *ProductHandler) UpdateStatus(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST", "請求格式錯誤")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.productUsecase.UpdateProductStatus(
		c.Request().Context(), productID, middleware.CallerID(c), middleware.CallerRole(c), entity.ProductStatus(req.Status))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toProductBody(product), "商品狀態已更新")
}

// Delete handles DELETE /api/v1/products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productUsecase.DeleteProduct(c.Request().Context(), productID, middleware.CallerID(c), middleware.CallerRole(c)); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "商品已刪除")
}

// Get handles GET /api/v1/products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productUsecase.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toProductBody(product), "")
}

// GetAll handles GET /api/v1/products. Returns every product, DELETED
// included; the search worker's reconciliation depends on the full list.
func (h *ProductHandler) GetAll(c echo.Context) error {
	products, err := h.productUsecase.GetAllProducts(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toProductBodyList(products), "")
}

// GetBySeller handles GET /api/v1/products/seller/:sellerId.
func (h *ProductHandler) GetBySeller(c echo.Context) error {
	sellerID, err := pathID(c, "sellerId")
	if err != nil {
		return err
	}

	products, err := h.productUsecase.GetProductsBySeller(c.Request().Context(), sellerID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toProductBodyList(products), "")
}

// GetByCategory handles GET /api/v1/products/category/:category.
func (h *ProductHandler) GetByCategory(c echo.Context) error {
	category := c.Param("category")
	if category == "" {
		return response.BadRequest(c, "INVALID_CATEGORY", "缺少商品分類")
	}

	products, err := h.productUsecase.GetProductsByCategory(c.Request().Context(), category)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toProductBodyList(products), "")
}
