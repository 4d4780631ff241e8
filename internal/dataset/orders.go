package dataset

import (
	"github.com/RoyceAzure/lab/stylish/internal/domain/model"
)

// Orders 訂單種子資料，依下單時間由舊到新
func Orders() []model.Order {
	return []model.Order{
		{
			OrderID:   "ORD-001",
			Customer:  "John Doe",
			Email:     "john.doe@example.com",
			Phone:     "(555) 123-4567",
			OrderDate: at("2023-06-15T10:30:00"),
			Total:     price("129.97"),
			Status:    model.OrderStatusDelivered,
			Items: []model.OrderItem{
				{ProductID: "1", Name: "Classic White T-Shirt", Price: price("29.99"), Quantity: 2, Image: "https://img.heroui.chat/image/clothing?w=600&h=800&u=1", Variant: "White / M"},
				{ProductID: "7", Name: "Aviator Sunglasses", Price: price("35.99"), Quantity: 1, Image: "https://img.heroui.chat/image/fashion?w=600&h=800&u=14", Variant: "Gold"},
				{ProductID: "4", Name: "Leather Crossbody Bag", Price: price("79.99"), Quantity: 1, Image: "https://img.heroui.chat/image/fashion?w=600&h=800&u=11", Variant: "Brown"},
			},
			ShippingAddress: model.Address{Street: "123 Main St", City: "Anytown", State: "CA", Zip: "12345", Country: "United States"},
			ShippingMethod:  model.ShippingStandard,
			PaymentMethod:   model.PaymentCreditCard,
		},
		{
			OrderID:   "ORD-002",
			Customer:  "Jane Smith",
			Email:     "jane.smith@example.com",
			Phone:     "(555) 987-6543",
			OrderDate: at("2023-06-18T14:45:00"),
			Total:     price("159.98"),
			Status:    model.OrderStatusShipped,
			Items: []model.OrderItem{
				{ProductID: "3", Name: "Summer Floral Dress", Price: price("49.99"), Quantity: 1, Image: "https://img.heroui.chat/image/clothing?w=600&h=800&u=8", Variant: "Blue / S"},
				{ProductID: "9", Name: "Leather Ankle Boots", Price: price("119.99"), Quantity: 1, Image: "https://img.heroui.chat/image/shoes?w=600&h=800&u=5", Variant: "Brown / 7"},
			},
			ShippingAddress: model.Address{Street: "456 Oak Ave", City: "Somewhere", State: "NY", Zip: "67890", Country: "United States"},
			ShippingMethod:  model.ShippingExpress,
			PaymentMethod:   model.PaymentPayPal,
		},
		{
			OrderID:   "ORD-003",
			Customer:  "Robert Johnson",
			Email:     "robert.johnson@example.com",
			Phone:     "(555) 456-7890",
			OrderDate: at("2023-06-20T09:15:00"),
			Total:     price("89.99"),
			Status:    model.OrderStatusProcessing,
			Items: []model.OrderItem{
				{ProductID: "5", Name: "Running Sneakers", Price: price("89.99"), Quantity: 1, Image: "https://img.heroui.chat/image/shoes?w=600&h=800&u=2", Variant: "Black / 10"},
			},
			ShippingAddress: model.Address{Street: "789 Pine St", City: "Elsewhere", State: "TX", Zip: "54321", Country: "United States"},
			ShippingMethod:  model.ShippingStandard,
			PaymentMethod:   model.PaymentCreditCard,
		},
		{
			OrderID:   "ORD-004",
			Customer:  "Emily Davis",
			Email:     "emily.davis@example.com",
			Phone:     "(555) 234-5678",
			OrderDate: at("2023-06-22T16:30:00"),
			Total:     price("91.98"),
			Status:    model.OrderStatusDelivered,
			Items: []model.OrderItem{
				{ProductID: "6", Name: "Oversized Hoodie", Price: price("45.99"), Quantity: 2, Image: "https://img.heroui.chat/image/clothing?w=600&h=800&u=11", Variant: "Gray / L"},
			},
			ShippingAddress: model.Address{Street: "321 Maple Rd", City: "Nowhere", State: "FL", Zip: "98765", Country: "United States"},
			ShippingMethod:  model.ShippingStandard,
			PaymentMethod:   model.PaymentApplePay,
		},
		{
			OrderID:   "ORD-005",
			Customer:  "Michael Brown",
			Email:     "michael.brown@example.com",
			Phone:     "(555) 876-5432",
			OrderDate: at("2023-06-25T11:00:00"),
			Total:     price("103.99"),
			Status:    model.OrderStatusCancelled,
			Items: []model.OrderItem{
				{ProductID: "8", Name: "Formal Blazer", Price: price("129.99"), Quantity: 1, Image: "https://img.heroui.chat/image/clothing?w=600&h=800&u=14", Variant: "Navy / M"},
			},
			ShippingAddress: model.Address{Street: "654 Cedar Ln", City: "Somewhere Else", State: "WA", Zip: "43210", Country: "United States"},
			ShippingMethod:  model.ShippingExpress,
			PaymentMethod:   model.PaymentCreditCard,
		},
		{
			OrderID:   "ORD-006",
			Customer:  "Sarah Wilson",
			Email:     "sarah.wilson@example.com",
			Phone:     "(555) 345-6789",
			OrderDate: at("2023-06-28T13:20:00"),
			Total:     price("119.97"),
			Status:    model.OrderStatusProcessing,
			Items: []model.OrderItem{
				{ProductID: "2", Name: "Slim Fit Jeans", Price: price("59.99"), Quantity: 1, Image: "https://img.heroui.chat/image/clothing?w=600&h=800&u=5", Variant: "Blue / 32"},
				{ProductID: "11", Name: "Wireless Earbuds", Price: price("99.99"), Quantity: 1, Image: "https://img.heroui.chat/image/fashion?w=600&h=800&u=16", Variant: "White"},
			},
			ShippingAddress: model.Address{Street: "987 Birch St", City: "Anyplace", State: "IL", Zip: "56789", Country: "United States"},
			ShippingMethod:  model.ShippingStandard,
			PaymentMethod:   model.PaymentPayPal,
		},
	}
}
