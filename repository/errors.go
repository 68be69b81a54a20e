package repository

import "errors"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
)
