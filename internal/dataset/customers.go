package dataset

import (
	"github.com/RoyceAzure/lab/stylish/internal/domain/model"
)

// Customers 客戶種子資料
func Customers() []model.Customer {
	return []model.Customer{
		{
			CustomerID: "1",
			Name:       "John Doe",
			Email:      "john.doe@example.com",
			Phone:      "(555) 123-4567",
			JoinDate:   at("2023-01-15T10:30:00"),
			OrderCount: 5,
			TotalSpent: price("429.95"),
			IsVIP:      true,
			Address:    &model.Address{Street: "123 Main St", City: "Anytown", State: "CA", Zip: "12345", Country: "United States"},
			Orders: []model.CustomerOrder{
				{OrderID: "ORD-001", Date: at("2023-06-15T10:30:00"), Items: 3, Total: price("129.97"), Status: model.OrderStatusDelivered},
				{OrderID: "ORD-008", Date: at("2023-05-20T14:15:00"), Items: 2, Total: price("89.98"), Status: model.OrderStatusDelivered},
				{OrderID: "ORD-015", Date: at("2023-04-10T09:45:00"), Items: 1, Total: price("69.99"), Status: model.OrderStatusDelivered},
			},
			Notes: []model.CustomerNote{
				{Author: "Customer Support", Date: at("2023-06-16T11:30:00"), Content: "Customer called about order ORD-001. Provided tracking information."},
				{Author: "Sales Team", Date: at("2023-05-05T15:45:00"), Content: "VIP customer. Offer 10% discount on next purchase."},
			},
		},
		{
			CustomerID: "2",
			Name:       "Jane Smith",
			Email:      "jane.smith@example.com",
			Phone:      "(555) 987-6543",
			JoinDate:   at("2023-02-20T14:45:00"),
			OrderCount: 3,
			TotalSpent: price("259.96"),
			IsVIP:      false,
			Address:    &model.Address{Street: "456 Oak Ave", City: "Somewhere", State: "NY", Zip: "67890", Country: "United States"},
			Orders: []model.CustomerOrder{
				{OrderID: "ORD-002", Date: at("2023-06-18T14:45:00"), Items: 2, Total: price("159.98"), Status: model.OrderStatusShipped},
				{OrderID: "ORD-012", Date: at("2023-04-25T10:30:00"), Items: 1, Total: price("99.98"), Status: model.OrderStatusDelivered},
			},
			Notes: []model.CustomerNote{
				{Author: "Customer Support", Date: at("2023-06-19T09:15:00"), Content: "Customer inquired about return policy for order ORD-002."},
			},
		},
		{
			CustomerID: "3",
			Name:       "Robert Johnson",
			Email:      "robert.johnson@example.com",
			Phone:      "(555) 456-7890",
			JoinDate:   at("2023-03-10T09:15:00"),
			OrderCount: 2,
			TotalSpent: price("189.98"),
			IsVIP:      false,
			Address:    &model.Address{Street: "789 Pine St", City: "Elsewhere", State: "TX", Zip: "54321", Country: "United States"},
			Orders: []model.CustomerOrder{
				{OrderID: "ORD-003", Date: at("2023-06-20T09:15:00"), Items: 1, Total: price("89.99"), Status: model.OrderStatusProcessing},
				{OrderID: "ORD-017", Date: at("2023-05-05T16:20:00"), Items: 1, Total: price("99.99"), Status: model.OrderStatusDelivered},
			},
		},
		{
			CustomerID: "4",
			Name:       "Emily Davis",
			Email:      "emily.davis@example.com",
			Phone:      "(555) 234-5678",
			JoinDate:   at("2023-02-05T16:30:00"),
			OrderCount: 4,
			TotalSpent: price("321.94"),
			IsVIP:      true,
			Address:    &model.Address{Street: "321 Maple Rd", City: "Nowhere", State: "FL", Zip: "98765", Country: "United States"},
			Orders: []model.CustomerOrder{
				{OrderID: "ORD-004", Date: at("2023-06-22T16:30:00"), Items: 2, Total: price("91.98"), Status: model.OrderStatusDelivered},
				{OrderID: "ORD-009", Date: at("2023-05-15T11:45:00"), Items: 3, Total: price("129.97"), Status: model.OrderStatusDelivered},
				{OrderID: "ORD-020", Date: at("2023-04-02T14:10:00"), Items: 2, Total: price("99.99"), Status: model.OrderStatusDelivered},
			},
			Notes: []model.CustomerNote{
				{Author: "Sales Team", Date: at("2023-06-01T10:30:00"), Content: "VIP customer. Sent birthday discount code."},
			},
		},
		{
			CustomerID: "5",
			Name:       "Michael Brown",
			Email:      "michael.brown@example.com",
			Phone:      "(555) 876-5432",
			JoinDate:   at("2023-04-15T11:00:00"),
			OrderCount: 1,
			TotalSpent: price("103.99"),
			IsVIP:      false,
			Address:    &model.Address{Street: "654 Cedar Ln", City: "Somewhere Else", State: "WA", Zip: "43210", Country: "United States"},
			Orders: []model.CustomerOrder{
				{OrderID: "ORD-005", Date: at("2023-06-25T11:00:00"), Items: 1, Total: price("103.99"), Status: model.OrderStatusCancelled},
			},
			Notes: []model.CustomerNote{
				{Author: "Customer Support", Date: at("2023-06-26T09:45:00"), Content: "Customer requested cancellation of order ORD-005. Refund processed."},
			},
		},
		{
			CustomerID: "6",
			Name:       "Sarah Wilson",
			Email:      "sarah.wilson@example.com",
			Phone:      "(555) 345-6789",
			JoinDate:   at("2023-03-25T13:20:00"),
			OrderCount: 3,
			TotalSpent: price("279.95"),
			IsVIP:      false,
			Address:    &model.Address{Street: "987 Birch St", City: "Anyplace", State: "IL", Zip: "56789", Country: "United States"},
			Orders: []model.CustomerOrder{
				{OrderID: "ORD-006", Date: at("2023-06-28T13:20:00"), Items: 2, Total: price("119.97"), Status: model.OrderStatusProcessing},
				{OrderID: "ORD-013", Date: at("2023-05-10T15:30:00"), Items: 1, Total: price("79.99"), Status: model.OrderStatusDelivered},
				{OrderID: "ORD-018", Date: at("2023-04-18T10:15:00"), Items: 2, Total: price("79.99"), Status: model.OrderStatusDelivered},
			},
		},
		{
			CustomerID: "7",
			Name:       "David Miller",
			Email:      "david.miller@example.com",
			Phone:      "(555) 567-8901",
			JoinDate:   at("2023-01-30T10:15:00"),
			OrderCount: 5,
			TotalSpent: price("459.94"),
			IsVIP:      true,
			Address:    &model.Address{Street: "753 Elm St", City: "Othertown", State: "OH", Zip: "45678", Country: "United States"},
			Orders: []model.CustomerOrder{
				{OrderID: "ORD-007", Date: at("2023-06-30T10:15:00"), Items: 3, Total: price("149.97"), Status: model.OrderStatusProcessing},
				{OrderID: "ORD-011", Date: at("2023-05-25T14:20:00"), Items: 2, Total: price("109.98"), Status: model.OrderStatusDelivered},
				{OrderID: "ORD-016", Date: at("2023-04-15T11:30:00"), Items: 1, Total: price("99.99"), Status: model.OrderStatusDelivered},
			},
			Notes: []model.CustomerNote{
				{Author: "Sales Team", Date: at("2023-06-15T13:45:00"), Content: "VIP customer. Frequent buyer, consider for loyalty program."},
			},
		},
		{
			CustomerID: "8",
			Name:       "Jennifer Taylor",
			Email:      "jennifer.taylor@example.com",
			Phone:      "(555) 678-9012",
			JoinDate:   at("2023-02-10T15:30:00"),
			OrderCount: 2,
			TotalSpent: price("169.98"),
			IsVIP:      false,
			Address:    &model.Address{Street: "159 Walnut Ave", City: "Somecity", State: "MI", Zip: "23456", Country: "United States"},
			Orders: []model.CustomerOrder{
				{OrderID: "ORD-010", Date: at("2023-06-05T15:30:00"), Items: 1, Total: price("89.99"), Status: model.OrderStatusDelivered},
				{OrderID: "ORD-019", Date: at("2023-05-02T09:45:00"), Items: 1, Total: price("79.99"), Status: model.OrderStatusDelivered},
			},
		},
	}
}
