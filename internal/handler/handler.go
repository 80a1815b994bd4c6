package handler

import "shortspro/internal/service"

type Handler struct {
	Service *service.Service
}

func NewHandler() *Handler {
	return &Handler{Service: service.NewService()}
}
