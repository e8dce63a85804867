package models

type ShirtSizeName string

const (
	ShirtSizeXS  ShirtSizeName = "XS"
	ShirtSizeS   ShirtSizeName = "S"
	ShirtSizeM   ShirtSizeName = "M"
	ShirtSizeL   ShirtSizeName = "L"
	ShirtSizeXL  ShirtSizeName = "XL"
	ShirtSizeXXL ShirtSizeName = "XXL"
)

func (s ShirtSizeName) Valid() bool {
	switch s {
	case ShirtSizeXS, ShirtSizeS, ShirtSizeM, ShirtSizeL, ShirtSizeXL, ShirtSizeXXL:
		return true
	}
	return false
}

type ShirtSize struct {
	ID       int            `json:"size_id"`
	SizeName *ShirtSizeName `json:"size_name,omitempty"`
}
