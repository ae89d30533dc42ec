package models

import (
	"encoding/gob"

	"github.com/shopspring/decimal"
)

// CartItem is a session-only line item. It is never persisted to the
// database and is not an authoritative record of a transaction: the
// unit price is a snapshot taken when the item was added.
type CartItem struct {
	UserID      uint
	ProductID   uint
	ProductName string
	UnitPrice   decimal.Decimal
	UnitPriceF  string
}

// CartItemGroup is one row of the grouped cart view: all entries of a
// product collapsed into a count and an aggregated price.
type CartItemGroup struct {
	UserID       uint
	ProductID    uint
	ProductName  string
	ProductCount int
	TotalPrice   decimal.Decimal
	TotalPriceF  string
}

func init() {
	// cart items travel gob-encoded inside the session cookie store
	gob.Register([]CartItem{})
}
