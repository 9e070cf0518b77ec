package service

import "errors"

var (
	ErrEmptyName       = errors.New("item name must not be empty")
	ErrInvalidQuantity = errors.New("item quantity must be positive")
)
