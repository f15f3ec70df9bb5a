package model

import (
	"strconv"
	"strings"
)

// Item status values. Status is always derived from stock, never set by callers.
const (
	StatusOK  = "OK"
	StatusLow = "LOW"
)

// DepartmentHeaders is the canonical header row of every department tab.
var DepartmentHeaders = []string{
	"Item Code", "Item Name", "Category", "Stock", "Unit", "Status", "Image",
}

type Item struct {
	Code       string `json:"code"`
	Name       string `json:"name" validate:"required"`
	Category   string `json:"category"`
	Department string `json:"department" validate:"required"`
	Stock      int    `json:"stock"`
	Unit       string `json:"unit"`
	Status     string `json:"status"`
	Image      string `json:"image"`
}

// StatusForStock derives the item status from a stock level.
func StatusForStock(stock, threshold int) string {
	if stock <= threshold {
		return StatusLow
	}
	return StatusOK
}

// Row lays the item out in department-tab column order (A through G).
func (i Item) Row() []string {
	return []string{
		i.Code, i.Name, i.Category, strconv.Itoa(i.Stock), i.Unit, i.Status, i.Image,
	}
}

// ItemFromRow maps a stored row back to an Item. Short rows are padded and a
// blank or non-numeric stock cell coerces to 0. Status is taken as persisted.
func ItemFromRow(department string, row []string) Item {
	return Item{
		Code:       cell(row, 0),
		Name:       cell(row, 1),
		Category:   cell(row, 2),
		Department: department,
		Stock:      stockValue(cell(row, 3)),
		Unit:       cell(row, 4),
		Status:     cell(row, 5),
		Image:      cell(row, 6),
	}
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func stockValue(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
