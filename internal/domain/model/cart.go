package model

// CartItem 購物車明細
// 只保留 product_id，商品詳細資訊以 catalog 為唯一真相來源
// 唯一鍵 = (product_id, size, color)
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

// SameLine 判斷兩筆明細是否屬於同一條line key
func (i CartItem) SameLine(productID, size, color string) bool {
	return i.ProductID == productID && i.Size == size && i.Color == color
}
