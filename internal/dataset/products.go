package dataset

import (
	"github.com/RoyceAzure/lab/stylish/internal/domain/model"
)

// Products 商品種子資料
// 每次呼叫回傳新的slice，呼叫端可安全持有
func Products() []model.Product {
	return []model.Product{
		{
			ProductID:   "1",
			Name:        "Classic White T-Shirt",
			Description: "A comfortable and versatile white t-shirt made from 100% cotton.",
			Price:       price("29.99"),
			Discount:    0,
			Category:    "Men",
			Image:       "https://img.heroui.chat/image/clothing?w=600&h=800&u=1",
			AdditionalImages: []string{
				"https://img.heroui.chat/image/clothing?w=600&h=800&u=2",
				"https://img.heroui.chat/image/clothing?w=600&h=800&u=3",
				"https://img.heroui.chat/image/clothing?w=600&h=800&u=4",
			},
			Rating:   4.5,
			Reviews:  120,
			Stock:    50,
			Sizes:    []string{"S", "M", "L", "XL"},
			Colors:   []string{"White", "Black", "Gray"},
			Tags:     []string{"t-shirt", "casual", "basics"},
			IsNew:    false,
			Featured: true,
			SKU:      "TS-WHT-001",
			Sales:    89,
		},
		{
			ProductID:   "2",
			Name:        "Slim Fit Jeans",
			Description: "Modern slim fit jeans with a comfortable stretch fabric.",
			Price:       price("59.99"),
			Discount:    10,
			Category:    "Men",
			Image:       "https://img.heroui.chat/image/clothing?w=600&h=800&u=5",
			AdditionalImages: []string{
				"https://img.heroui.chat/image/clothing?w=600&h=800&u=6",
				"https://img.heroui.chat/image/clothing?w=600&h=800&u=7",
			},
			Rating:   4.2,
			Reviews:  85,
			Stock:    30,
			Sizes:    []string{"30", "32", "34", "36"},
			Colors:   []string{"Blue", "Black"},
			Tags:     []string{"jeans", "denim", "slim fit"},
			IsNew:    false,
			Featured: false,
			SKU:      "JN-SLM-001",
			Sales:    64,
		},
		{
			ProductID:   "3",
			Name:        "Summer Floral Dress",
			Description: "Light and flowy floral dress perfect for summer days.",
			Price:       price("49.99"),
			Discount:    0,
			Category:    "Women",
			Image:       "https://img.heroui.chat/image/clothing?w=600&h=800&u=8",
			AdditionalImages: []string{
				"https://img.heroui.chat/image/clothing?w=600&h=800&u=9",
				"https://img.heroui.chat/image/clothing?w=600&h=800&u=10",
			},
			Rating:   4.8,
			Reviews:  156,
			Stock:    25,
			Sizes:    []string{"XS", "S", "M", "L"},
			Colors:   []string{"Blue", "Pink", "Yellow"},
			Tags:     []string{"dress", "summer", "floral"},
			IsNew:    true,
			Featured: true,
			SKU:      "DR-FLR-001",
			Sales:    112,
		},
		{
			ProductID:   "4",
			Name:        "Leather Crossbody Bag",
			Description: "Stylish leather crossbody bag with multiple compartments.",
			Price:       price("79.99"),
			Discount:    15,
			Category:    "Accessories",
			Image:       "https://img.heroui.chat/image/fashion?w=600&h=800&u=11",
			AdditionalImages: []string{
				"https://img.heroui.chat/image/fashion?w=600&h=800&u=12",
				"https://img.heroui.chat/image/fashion?w=600&h=800&u=13",
			},
			Rating:   4.6,
			Reviews:  92,
			Stock:    15,
			Sizes:    []string{},
			Colors:   []string{"Brown", "Black", "Tan"},
			Tags:     []string{"bag", "leather", "accessories"},
			IsNew:    false,
			Featured: true,
			SKU:      "BG-LTH-001",
			Sales:    78,
		},
		{
			ProductID:   "5",
			Name:        "Running Sneakers",
			Description: "Lightweight and comfortable running shoes with cushioned soles.",
			Price:       price("89.99"),
			Discount:    0,
			Category:    "Shoes",
			Image:       "https://img.heroui.chat/image/shoes?w=600&h=800&u=2",
			AdditionalImages: []string{
				"https://img.heroui.chat/image/shoes?w=600&h=800&u=3",
				"https://img.heroui.chat/image/shoes?w=600&h=800&u=4",
			},
			Rating:   4.4,
			Reviews:  78,
			Stock:    20,
			Sizes:    []string{"7", "8", "9", "10", "11"},
			Colors:   []string{"Black", "White", "Red"},
			Tags:     []string{"shoes", "running", "athletic"},
			IsNew:    true,
			Featured: false,
			SKU:      "SH-RUN-001",
			Sales:    56,
		},
		{
			ProductID:   "6",
			Name:        "Oversized Hoodie",
			Description: "Cozy oversized hoodie with a kangaroo pocket and drawstring hood.",
			Price:       price("45.99"),
			Discount:    0,
			Category:    "Women",
			Image:       "https://img.heroui.chat/image/clothing?w=600&h=800&u=11",
			AdditionalImages: []string{
				"https://img.heroui.chat/image/clothing?w=600&h=800&u=12",
				"https://img.heroui.chat/image/clothing?w=600&h=800&u=13",
			},
			Rating:   4.7,
			Reviews:  103,
			Stock:    40,
			Sizes:    []string{"S", "M", "L", "XL"},
			Colors:   []string{"Gray", "Black", "Pink"},
			Tags:     []string{"hoodie", "casual", "cozy"},
			IsNew:    false,
			Featured: true,
			SKU:      "HD-OVR-001",
			Sales:    95,
		},
		{
			ProductID:   "7",
			Name:        "Aviator Sunglasses",
			Description: "Classic aviator sunglasses with UV protection.",
			Price:       price("35.99"),
			Discount:    0,
			Category:    "Accessories",
			Image:       "https://img.heroui.chat/image/fashion?w=600&h=800&u=14",
			AdditionalImages: []string{
				"https://img.heroui.chat/image/fashion?w=600&h=800&u=15",
			},
			Rating:   4.3,
			Reviews:  67,
			Stock:    25,
			Sizes:    []string{},
			Colors:   []string{"Gold", "Silver", "Black"},
			Tags:     []string{"sunglasses", "accessories", "summer"},
			IsNew:    false,
			Featured: false,
			SKU:      "SG-AVT-001",
			Sales:    42,
		},
		{
			ProductID:   "8",
			Name:        "Formal Blazer",
			Description: "Elegant formal blazer for professional settings.",
			Price:       price("129.99"),
			Discount:    20,
			Category:    "Men",
			Image:       "https://img.heroui.chat/image/clothing?w=600&h=800&u=14",
			AdditionalImages: []string{
				"https://img.heroui.chat/image/clothing?w=600&h=800&u=15",
				"https://img.heroui.chat/image/clothing?w=600&h=800&u=16",
			},
			Rating:   4.6,
			Reviews:  54,
			Stock:    15,
			Sizes:    []string{"S", "M", "L", "XL", "XXL"},
			Colors:   []string{"Navy", "Black", "Gray"},
			Tags:     []string{"blazer", "formal", "professional"},
			IsNew:    false,
			Featured: true,
			SKU:      "BZ-FRM-001",
			Sales:    38,
		},
		{
			ProductID:   "9",
			Name:        "Leather Ankle Boots",
			Description: "Stylish leather ankle boots with a side zipper.",
			Price:       price("119.99"),
			Discount:    0,
			Category:    "Shoes",
			Image:       "https://img.heroui.chat/image/shoes?w=600&h=800&u=5",
			AdditionalImages: []string{
				"https://img.heroui.chat/image/shoes?w=600&h=800&u=6",
				"https://img.heroui.chat/image/shoes?w=600&h=800&u=7",
			},
			Rating:   4.5,
			Reviews:  89,
			Stock:    12,
			Sizes:    []string{"6", "7", "8", "9", "10"},
			Colors:   []string{"Brown", "Black"},
			Tags:     []string{"boots", "leather", "ankle"},
			IsNew:    true,
			Featured: false,
			SKU:      "BT-ANK-001",
			Sales:    67,
		},
		{
			ProductID:   "10",
			Name:        "Pleated Midi Skirt",
			Description: "Elegant pleated midi skirt with an elastic waistband.",
			Price:       price("39.99"),
			Discount:    0,
			Category:    "Women",
			Image:       "https://img.heroui.chat/image/clothing?w=600&h=800&u=17",
			AdditionalImages: []string{
				"https://img.heroui.chat/image/clothing?w=600&h=800&u=18",
				"https://img.heroui.chat/image/clothing?w=600&h=800&u=19",
			},
			Rating:   4.4,
			Reviews:  76,
			Stock:    30,
			Sizes:    []string{"XS", "S", "M", "L"},
			Colors:   []string{"Black", "Beige", "Navy"},
			Tags:     []string{"skirt", "midi", "pleated"},
			IsNew:    false,
			Featured: true,
			SKU:      "SK-MID-001",
			Sales:    58,
		},
		{
			ProductID:   "11",
			Name:        "Wireless Earbuds",
			Description: "High-quality wireless earbuds with noise cancellation.",
			Price:       price("99.99"),
			Discount:    10,
			Category:    "Accessories",
			Image:       "https://img.heroui.chat/image/fashion?w=600&h=800&u=16",
			AdditionalImages: []string{
				"https://img.heroui.chat/image/fashion?w=600&h=800&u=17",
			},
			Rating:   4.7,
			Reviews:  112,
			Stock:    20,
			Sizes:    []string{},
			Colors:   []string{"White", "Black"},
			Tags:     []string{"earbuds", "wireless", "audio"},
			IsNew:    true,
			Featured: true,
			SKU:      "EB-WRL-001",
			Sales:    87,
		},
		{
			ProductID:   "12",
			Name:        "Denim Jacket",
			Description: "Classic denim jacket with button closure and multiple pockets.",
			Price:       price("69.99"),
			Discount:    0,
			Category:    "Men",
			Image:       "https://img.heroui.chat/image/clothing?w=600&h=800&u=20",
			AdditionalImages: []string{
				"https://img.heroui.chat/image/clothing?w=600&h=800&u=21",
				"https://img.heroui.chat/image/clothing?w=600&h=800&u=22",
			},
			Rating:   4.5,
			Reviews:  98,
			Stock:    25,
			Sizes:    []string{"S", "M", "L", "XL"},
			Colors:   []string{"Blue", "Light Blue", "Black"},
			Tags:     []string{"jacket", "denim", "casual"},
			IsNew:    false,
			Featured: false,
			SKU:      "JK-DNM-001",
			Sales:    72,
		},
	}
}
