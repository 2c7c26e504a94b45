package dto

type AddressQuery struct {
	Q string `form:"q"`
}

type Address struct {
	Label string `json:"label"`
	Lat   string `json:"lat"`
	Lon   string `json:"lon"`
}
