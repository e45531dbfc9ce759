package models

import (
	"github.com/shopspring/decimal"
	"time"
)

// Column names follow the Chinook sample database so existing database files can be served
// as they are. JSON keys use the same names as the columns.

type Artist struct {
	ID   uint    `gorm:"column:ArtistId;primaryKey" json:"ArtistId"`
	Name *string `gorm:"column:Name;size:120;index" json:"Name"`
}

func (Artist) TableName() string {
	return "artists"
}

type Album struct {
	ID       uint   `gorm:"column:AlbumId;primaryKey" json:"AlbumId"`
	Title    string `gorm:"column:Title;size:160;not null" json:"Title"`
	ArtistID uint   `gorm:"column:ArtistId;not null;index" json:"ArtistId"`
}

func (Album) TableName() string {
	return "albums"
}

type Genre struct {
	ID   uint    `gorm:"column:GenreId;primaryKey" json:"GenreId"`
	Name *string `gorm:"column:Name;size:120" json:"Name"`
}

func (Genre) TableName() string {
	return "genres"
}

type MediaType struct {
	ID   uint    `gorm:"column:MediaTypeId;primaryKey" json:"MediaTypeId"`
	Name *string `gorm:"column:Name;size:120" json:"Name"`
}

func (MediaType) TableName() string {
	return "media_types"
}

type Track struct {
	ID           uint            `gorm:"column:TrackId;primaryKey" json:"TrackId"`
	Name         string          `gorm:"column:Name;size:200;not null" json:"Name"`
	AlbumID      *uint           `gorm:"column:AlbumId;index" json:"AlbumId"`
	MediaTypeID  uint            `gorm:"column:MediaTypeId;not null;index" json:"MediaTypeId"`
	GenreID      *uint           `gorm:"column:GenreId;index" json:"GenreId"`
	Composer     *string         `gorm:"column:Composer;size:220" json:"Composer"`
	Milliseconds int64           `gorm:"column:Milliseconds;not null" json:"Milliseconds"`
	Bytes        *int64          `gorm:"column:Bytes" json:"Bytes"`
	UnitPrice    decimal.Decimal `gorm:"column:UnitPrice;type:numeric(10,2);not null" json:"UnitPrice"` // Price per track
}

func (Track) TableName() string {
	return "tracks"
}

type Employee struct {
	ID         uint       `gorm:"column:EmployeeId;primaryKey" json:"EmployeeId"`
	LastName   string     `gorm:"column:LastName;size:20;not null" json:"LastName"`
	FirstName  string     `gorm:"column:FirstName;size:20;not null" json:"FirstName"`
	Title      *string    `gorm:"column:Title;size:30" json:"Title"`
	ReportsTo  *uint      `gorm:"column:ReportsTo;index" json:"ReportsTo"` // Manager, nil for the top of the hierarchy
	BirthDate  *time.Time `gorm:"column:BirthDate" json:"BirthDate"`
	HireDate   *time.Time `gorm:"column:HireDate" json:"HireDate"`
	Address    *string    `gorm:"column:Address;size:70" json:"Address"`
	City       *string    `gorm:"column:City;size:40" json:"City"`
	State      *string    `gorm:"column:State;size:40" json:"State"`
	Country    *string    `gorm:"column:Country;size:40" json:"Country"`
	PostalCode *string    `gorm:"column:PostalCode;size:10" json:"PostalCode"`
	Phone      *string    `gorm:"column:Phone;size:24" json:"Phone"`
	Fax        *string    `gorm:"column:Fax;size:24" json:"Fax"`
	Email      *string    `gorm:"column:Email;size:60" json:"Email"`
}

func (Employee) TableName() string {
	return "employees"
}

type Customer struct {
	ID           uint    `gorm:"column:CustomerId;primaryKey" json:"CustomerId"`
	FirstName    string  `gorm:"column:FirstName;size:40;not null" json:"FirstName"`
	LastName     string  `gorm:"column:LastName;size:20;not null" json:"LastName"`
	Company      *string `gorm:"column:Company;size:80" json:"Company"`
	Address      *string `gorm:"column:Address;size:70" json:"Address"`
	City         *string `gorm:"column:City;size:40" json:"City"`
	State        *string `gorm:"column:State;size:40" json:"State"`
	Country      *string `gorm:"column:Country;size:40" json:"Country"`
	PostalCode   *string `gorm:"column:PostalCode;size:10" json:"PostalCode"`
	Phone        *string `gorm:"column:Phone;size:24" json:"Phone"`
	Fax          *string `gorm:"column:Fax;size:24" json:"Fax"`
	Email        string  `gorm:"column:Email;size:60;not null" json:"Email"`
	SupportRepID *uint   `gorm:"column:SupportRepId;index" json:"SupportRepId"` // Employee assigned to the customer
}

func (Customer) TableName() string {
	return "customers"
}

type Invoice struct {
	ID                uint            `gorm:"column:InvoiceId;primaryKey" json:"InvoiceId"`
	CustomerID        uint            `gorm:"column:CustomerId;not null;index" json:"CustomerId"`
	InvoiceDate       time.Time       `gorm:"column:InvoiceDate;not null" json:"InvoiceDate"`
	BillingAddress    *string         `gorm:"column:BillingAddress;size:70" json:"BillingAddress"`
	BillingCity       *string         `gorm:"column:BillingCity;size:40" json:"BillingCity"`
	BillingState      *string         `gorm:"column:BillingState;size:40" json:"BillingState"`
	BillingCountry    *string         `gorm:"column:BillingCountry;size:40" json:"BillingCountry"`
	BillingPostalCode *string         `gorm:"column:BillingPostalCode;size:10" json:"BillingPostalCode"`
	Total             decimal.Decimal `gorm:"column:Total;type:numeric(10,2);not null" json:"Total"`
}

func (Invoice) TableName() string {
	return "invoices"
}

type InvoiceItem struct {
	ID        uint            `gorm:"column:InvoiceLineId;primaryKey" json:"InvoiceLineId"`
	InvoiceID uint            `gorm:"column:InvoiceId;not null;index" json:"InvoiceId"`
	TrackID   uint            `gorm:"column:TrackId;not null;index" json:"TrackId"`
	UnitPrice decimal.Decimal `gorm:"column:UnitPrice;type:numeric(10,2);not null" json:"UnitPrice"`
	Quantity  int             `gorm:"column:Quantity;not null" json:"Quantity"`
}

func (InvoiceItem) TableName() string {
	return "invoice_items"
}
