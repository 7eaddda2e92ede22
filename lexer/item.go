// SPDX-License-Identifier: MIT
package lexer

import "fmt"

type (
	// ItemID int holding an identifier for the Item tokens
	ItemID int

	// Item type holding token, value & item type of scanned runes
	Item struct {
		Err error
		Val string // The value of this Item
		ID  ItemID // The type of this Item
		Pos int    // The starting position, (in bytes) of this Item
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_            ItemID = iota // Consume 0 to start actual numbering at 1.
	ItemError                  // Notify occurrence of an `error`.
	ItemEOF                    // End of the source.
	ItemNumber                 // A run of decimal digits.
	ItemOperator               // One of `+ - * /`.
	ItemOpen                   // '('.
	ItemClose                  // ')'.
)

var itemNames = map[ItemID]string{
	ItemError:    "ERROR",
	ItemEOF:      "EOF",
	ItemNumber:   "NUMBER",
	ItemOperator: "OPERATOR",
	ItemOpen:     "OPEN",
	ItemClose:    "CLOSE",
}

// String is the fmt.Stringer implementation for ItemID.
func (id ItemID) String() string {
	if name, ok := itemNames[id]; ok {
		return name
	}

	return fmt.Sprintf("ItemID(%d)", int(id))
}

// String is the fmt.Stringer implementation for Item.
func (i Item) String() string {
	if i.ID == ItemError {
		return fmt.Sprintf("%d:%s(%v)", i.Pos, i.ID, i.Err)
	}

	return fmt.Sprintf("%d:%s(%q)", i.Pos, i.ID, i.Val)
}
