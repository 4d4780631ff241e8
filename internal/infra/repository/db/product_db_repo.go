package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/stylish/internal/domain/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = errors.New("product not found")
)

// ProductDBRepo 商品目錄的DB來源
// 目錄啟動時讀一次，之後由後台維護商品資料
type ProductDBRepo struct {
	db *gorm.DB
}

func NewProductDBRepo(db *gorm.DB) *ProductDBRepo {
	return &ProductDBRepo{db: db}
}

// Migrate 建立products table
func (s *ProductDBRepo) Migrate() error {
	return s.db.AutoMigrate(&model.Product{})
}

// Seed 寫入種子商品，已存在的ID直接覆蓋
func (s *ProductDBRepo) Seed(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&products).Error
}

// ListProducts 實作catalog.IProvider，依primary key順序回傳全部商品
func (s *ProductDBRepo) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.db.WithContext(ctx).Order("product_id").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductDBRepo) GetProductByID(ctx context.Context, productID string) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).Where("product_id = ?", productID).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}
