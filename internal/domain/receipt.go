package domain

import "time"

type Receipt struct {
	Title       string
	Subtitle    string
	Footer      []string
	OrderID     uint
	IssuedAt    time.Time // already in the canteen time zone
	StudentName string
	StandName   string
	Lines       []ReceiptLine
	GrandTotal  int64
}

type ReceiptLine struct {
	Name      string
	Quantity  int
	UnitPrice float64
	Total     int64
}
