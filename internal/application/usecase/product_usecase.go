package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/repository"
	"github.com/tu-usuario/almacen-pro/pkg/datatable"
)

// Etiquetas de categoría que muestra la tabla de productos.
var categoryLabels = map[string]string{
	entity.CategoryCables:   "كابلات",
	entity.CategorySwitches: "مفاتيح",
	entity.CategoryLighting: "إضاءة",
	entity.CategoryTools:    "أدوات",
	entity.CategoryOther:    "أخرى",
}

// ProductUseCase la pantalla de catálogo: listado tabular y CRUD de productos.
type ProductUseCase struct {
	repo      repository.ProductRepository
	suppliers repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, suppliers repository.SupplierRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, suppliers: suppliers}
}

// productColumns arma las columnas de la tabla de productos. El nombre del
// proveedor se resuelve por derivación sobre el registro completo, igual que
// la etiqueta de categoría.
func (uc *ProductUseCase) productColumns(supplierNames map[string]string) []datatable.Column[*entity.Product] {
	return []datatable.Column[*entity.Product]{
		{
			Header:   "المنتج",
			Accessor: func(p *entity.Product) any { return p.Name },
			Cell: func(value any, p *entity.Product) string {
				return fmt.Sprintf("%s (%s)", value, p.SKU)
			},
		},
		{
			Header: "الفئة",
			Accessor: func(p *entity.Product) any {
				if label, ok := categoryLabels[p.Category]; ok {
					return label
				}
				return p.Category
			},
		},
		{
			Header:   "سعر التكلفة",
			Accessor: func(p *entity.Product) any { return p.CostPrice },
			Cell: func(value any, _ *entity.Product) string {
				return fmt.Sprintf("%s ر.س", value)
			},
		},
		{
			Header:   "سعر البيع",
			Accessor: func(p *entity.Product) any { return p.SellingPrice },
			Cell: func(value any, _ *entity.Product) string {
				return fmt.Sprintf("%s ر.س", value)
			},
		},
		{
			Header:   "المخزون",
			Accessor: func(p *entity.Product) any { return p.Quantity },
			Cell: func(value any, p *entity.Product) string {
				if p.LowStock() {
					return fmt.Sprintf("%d — أقل من الحد الأدنى (%d)", p.Quantity, p.MinStock)
				}
				return fmt.Sprintf("%d", p.Quantity)
			},
		},
		{
			Header: "المورد",
			Accessor: func(p *entity.Product) any {
				if name, ok := supplierNames[p.SupplierID]; ok {
					return name
				}
				return p.SupplierID
			},
		},
	}
}

// List presenta el catálogo filtrado y paginado.
func (uc *ProductUseCase) List(q dto.TableQuery) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	supplierNames, err := uc.supplierNames()
	if err != nil {
		return nil, err
	}
	columns := uc.productColumns(supplierNames)

	view := datatable.Present(products, columns, func(p *entity.Product) string { return p.ID }, datatable.Params{
		Search:  q.Search,
		Page:    q.Page,
		PerPage: q.PerPage,
	})

	rows := make([]dto.ProductRow, 0, len(view.Rows))
	for _, r := range view.Rows {
		rows = append(rows, dto.ProductRow{
			Key:     r.Key,
			Cells:   r.Cells,
			Product: *toProductResponse(r.Item),
		})
	}
	return &dto.ProductListResponse{
		Headers: tableHeaders(columns),
		Rows:    rows,
		Meta:    tableMeta(view),
	}, nil
}

func (uc *ProductUseCase) supplierNames() (map[string]string, error) {
	suppliers, err := uc.suppliers.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(suppliers))
	for _, s := range suppliers {
		names[s.ID] = s.Name
	}
	return names, nil
}

// Create crea un producto nuevo en el catálogo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		SKU:          in.SKU,
		Category:     in.Category,
		CostPrice:    in.CostPrice,
		SellingPrice: in.SellingPrice,
		Quantity:     in.Quantity,
		MinStock:     in.MinStock,
		SupplierID:   in.SupplierID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto (solo los campos presentes).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.SellingPrice != nil {
		product.SellingPrice = *in.SellingPrice
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	if in.SupplierID != nil {
		product.SupplierID = *in.SupplierID
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Category:     p.Category,
		CostPrice:    p.CostPrice,
		SellingPrice: p.SellingPrice,
		Quantity:     p.Quantity,
		MinStock:     p.MinStock,
		SupplierID:   p.SupplierID,
		LowStock:     p.LowStock(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
