package storage

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

type LineItem struct {
	ProductName  string `json:"productName" validate:"required"`
	ProductImage string `json:"productImage"`
	Price        string `json:"price" validate:"required"`
	Size         string `json:"size" validate:"required"`
	SizeCategory string `json:"sizeCategory" validate:"required,oneof=adult kids"`
	SleeveType   string `json:"sleeveType" validate:"required,oneof=short long"`
	JerseyName   string `json:"jerseyName"`
	JerseyNumber string `json:"jerseyNumber"`
	Quantity     int    `json:"quantity" validate:"min=1"`
}

type Order struct {
	ID              string     `json:"id"`
	CustomerName    string     `json:"customerName"`
	CustomerPhone   string     `json:"customerPhone"`
	Items           []LineItem `json:"items"`
	TotalPrice      string     `json:"totalPrice"`
	TransferSlipURI *string    `json:"transferSlipUri"`
	Status          Status     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type NewOrder struct {
	CustomerName    string     `json:"customerName" validate:"required"`
	CustomerPhone   string     `json:"customerPhone" validate:"required"`
	Items           []LineItem `json:"items" validate:"required,min=1,dive"`
	TotalPrice      string     `json:"totalPrice" validate:"required,money"`
	TransferSlipURI *string    `json:"transferSlipUri"`
}

type MerchItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
	Image string `json:"image"`
}

type NewMerchItem struct {
	Name  string `json:"name" validate:"required"`
	Price string `json:"price" validate:"required"`
	Image string `json:"image" validate:"required"`
}

// MerchPatch carries only the fields being changed; nil means untouched.
type MerchPatch struct {
	Name  *string `json:"name,omitempty"`
	Price *string `json:"price,omitempty"`
	Image *string `json:"image,omitempty"`
}

type Hero struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Number   string `json:"number"`
	Image    string `json:"image"`
}

type NewHero struct {
	Name     string `json:"name" validate:"required"`
	Position string `json:"position" validate:"required,position"`
	Number   string `json:"number" validate:"required"`
	Image    string `json:"image" validate:"required"`
}

type HeroPatch struct {
	Name     *string `json:"name,omitempty"`
	Position *string `json:"position,omitempty"`
	Number   *string `json:"number,omitempty"`
	Image    *string `json:"image,omitempty"`
}

type BankInfo struct {
	BankName      string `json:"bankName" validate:"required"`
	AccountName   string `json:"accountName" validate:"required"`
	AccountNumber string `json:"accountNumber" validate:"required"`
}

var Positions = []string{"Goalkeeper", "Defender", "Midfielder", "Forward", "Substitute"}
