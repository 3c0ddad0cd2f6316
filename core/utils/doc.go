// Package utils provides common utility functions for the qb-sync application.
// It currently holds the cell value coercion helpers shared by the Excel and
// QuickBooks adapters, keeping id and name coercion identical across sources.
package utils
