package dto

import "donorhub.app/api/internal/model"

type ListResponse[T any] struct {
	Items  []T   `json:"items"`
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

func NewListResponse[T any](items []T, page model.Page) ListResponse[T] {
	page = page.Normalize()
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Limit: page.Limit, Offset: page.Offset}
}
