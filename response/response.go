package response

import (
	"github.com/shopspring/decimal"
	"time"
)

type ArtistCreated struct {
	ArtistID uint `json:"artistId"`
}

type CustomerCreated struct {
	CustomerID uint `json:"customerId"`
}

type Message struct {
	Message      string `json:"message"`
	RowsAffected *int64 `json:"rowsAffected,omitempty"`
}

type Error struct {
	Error string `json:"error"`
}

// AlbumTrackRow is one track of an artist's album with its genre.
type AlbumTrackRow struct {
	AlbumID uint   `gorm:"column:AlbumId" json:"AlbumId"`
	Title   string `gorm:"column:Title" json:"Title"`
	Genre   string `gorm:"column:Genre" json:"Genre"`
	Track   string `gorm:"column:Track" json:"Track"`
}

// CustomerInvoiceLine is one invoice item of a customer's invoice.
type CustomerInvoiceLine struct {
	InvoiceID   uint            `gorm:"column:InvoiceId" json:"InvoiceId"`
	InvoiceDate time.Time       `gorm:"column:InvoiceDate" json:"InvoiceDate"`
	TrackID     uint            `gorm:"column:TrackId" json:"TrackId"`
	UnitPrice   decimal.Decimal `gorm:"column:UnitPrice" json:"UnitPrice"`
	Quantity    int             `gorm:"column:Quantity" json:"Quantity"`
}
