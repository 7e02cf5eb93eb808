package constant

type ProductCategory string

const (
	CategorySnacks ProductCategory = "snacks"
	CategorySweets ProductCategory = "sweets"
	CategoryPakoda ProductCategory = "pakoda"
	CategoryPaneer ProductCategory = "paneer"
)

func (c ProductCategory) Valid() bool {
	switch c {
	case CategorySnacks, CategorySweets, CategoryPakoda, CategoryPaneer:
		return true
	}
	return false
}

const (
	MaxImageBytes      = 5 * 1024 * 1024
	ImageBucketName    = "product-images"
	DefaultRatingStars = 4.5
)

var AllowedImageTypes = []string{"image/jpeg", "image/png", "image/webp"}
