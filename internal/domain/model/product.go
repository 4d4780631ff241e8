package model

import (
	"github.com/shopspring/decimal"
)

var percentBase = decimal.NewFromInt(100)

type Product struct {
	ProductID        string          `gorm:"primaryKey;type:varchar(255)" json:"product_id"`
	Name             string          `gorm:"not null;type:varchar(255)" json:"name"`
	Description      string          `gorm:"type:text" json:"description"`
	Price            decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Discount         uint            `gorm:"not null;default:0" json:"discount"` // 折扣百分比 0~100
	Category         string          `gorm:"not null;type:varchar(50)" json:"category"`
	Image            string          `gorm:"type:varchar(255)" json:"image"`
	AdditionalImages []string        `gorm:"serializer:json" json:"additional_images,omitempty"`
	Rating           float64         `gorm:"not null;default:0" json:"rating"`
	Reviews          int             `gorm:"not null;default:0" json:"reviews"`
	Stock            uint            `gorm:"not null;default:0" json:"stock"`
	Sizes            []string        `gorm:"serializer:json" json:"sizes"`
	Colors           []string        `gorm:"serializer:json" json:"colors"`
	Tags             []string        `gorm:"serializer:json" json:"tags,omitempty"`
	IsNew            bool            `gorm:"not null;default:false" json:"is_new"`
	Featured         bool            `gorm:"not null;default:false" json:"featured"`
	SKU              string          `gorm:"type:varchar(50)" json:"sku,omitempty"`
	Sales            int             `gorm:"not null;default:0" json:"sales"`
}

// EffectivePrice 折扣後單價
// price × (1 − discount/100)，discount 為 0 時直接回傳原價
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.Discount == 0 {
		return p.Price
	}
	discount := decimal.NewFromUint64(uint64(p.Discount)).Div(percentBase)
	return p.Price.Mul(decimal.NewFromInt(1).Sub(discount))
}

// OnSale 是否在特價中
func (p *Product) OnSale() bool {
	return p.Discount > 0
}

// HasSize 商品是否有指定尺寸，空的sizes代表無尺寸商品(例如包包)
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// HasColor 商品是否有指定顏色
func (p *Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}
	return false
}
