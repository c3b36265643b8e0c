// Package grpc содержит реализацию gRPC сервера управления ссылками
package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/tempizhere/golinks/internal/grpc/proto"
	"github.com/tempizhere/golinks/internal/models"
	"github.com/tempizhere/golinks/internal/repository"
	"github.com/tempizhere/golinks/internal/service"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server реализует gRPC сервер управления ссылками
type Server struct {
	proto.UnimplementedLinkServiceServer
	svc    *service.Service
	db     repository.Database
	logger *zap.Logger
}

// NewServer создаёт новый gRPC сервер
func NewServer(svc *service.Service, db repository.Database, logger *zap.Logger) *Server {
	return &Server{
		svc:    svc,
		db:     db,
		logger: logger,
	}
}

// CreateLink обрабатывает создание одной ссылки
func (s *Server) CreateLink(ctx context.Context, req *proto.CreateLinkRequest) (*proto.CreateLinkResponse, error) {
	code, err := s.svc.CreateLink(req.ShortCode, req.URL, req.Description)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &proto.CreateLinkResponse{
		ShortCode:   code,
		ShortURL:    s.svc.ShortURL(code),
		OriginalURL: req.URL,
	}, nil
}

// BatchCreateLinks обрабатывает пакетное создание ссылок
func (s *Server) BatchCreateLinks(ctx context.Context, req *proto.BatchCreateLinksRequest) (*proto.BatchCreateLinksResponse, error) {
	items := make([]models.BatchCreateItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = models.BatchCreateItem{
			ShortCode:   item.ShortCode,
			URL:         item.URL,
			Description: item.Description,
		}
	}

	result, err := s.svc.CreateBatch(items)
	if err != nil {
		return nil, s.mapError(err)
	}

	resp := &proto.BatchCreateLinksResponse{
		Success: make([]*proto.BatchCreatedLink, len(result.Success)),
		Errors:  make([]*proto.BatchCreateLinkError, len(result.Errors)),
	}
	for i, created := range result.Success {
		resp.Success[i] = &proto.BatchCreatedLink{
			ShortCode:   created.ShortCode,
			ShortURL:    created.ShortURL,
			OriginalURL: created.OriginalURL,
		}
	}
	for i, itemErr := range result.Errors {
		resp.Errors[i] = &proto.BatchCreateLinkError{
			OriginalURL: itemErr.OriginalURL,
			ShortCode:   itemErr.ShortCode,
			Error:       itemErr.Error,
		}
	}
	return resp, nil
}

// GetLink возвращает полную запись ссылки
func (s *Server) GetLink(ctx context.Context, req *proto.GetLinkRequest) (*proto.GetLinkResponse, error) {
	link, err := s.svc.GetLink(req.ShortCode)
	if err != nil {
		return nil, s.mapError(err)
	}
	return &proto.GetLinkResponse{Link: toProtoLink(link)}, nil
}

// UpdateLink применяет частичное обновление ссылки
func (s *Server) UpdateLink(ctx context.Context, req *proto.UpdateLinkRequest) (*proto.UpdateLinkResponse, error) {
	var update models.UpdateLinkRequest
	if req.URL != nil {
		update.URL = models.OptionalString{Set: true, Value: req.URL}
	}
	if req.IsEnabled != nil {
		enabled := int(*req.IsEnabled)
		update.IsEnabled = models.OptionalInt{Set: true, Value: &enabled}
	}
	if req.ClearDescription {
		update.Description = models.OptionalString{Set: true}
	} else if req.Description != nil {
		update.Description = models.OptionalString{Set: true, Value: req.Description}
	}

	if err := s.svc.UpdateLink(req.ShortCode, update); err != nil {
		return nil, s.mapError(err)
	}
	return &proto.UpdateLinkResponse{Updated: true}, nil
}

// DeleteLink удаляет ссылку по короткому коду
func (s *Server) DeleteLink(ctx context.Context, req *proto.DeleteLinkRequest) (*proto.DeleteLinkResponse, error) {
	if err := s.svc.DeleteLink(req.ShortCode); err != nil {
		return nil, s.mapError(err)
	}
	return &proto.DeleteLinkResponse{Deleted: true}, nil
}

// ListLinks возвращает все ссылки
func (s *Server) ListLinks(ctx context.Context, req *proto.ListLinksRequest) (*proto.ListLinksResponse, error) {
	links, err := s.svc.ListLinks()
	if err != nil {
		s.logger.Error("Failed to list links", zap.Error(err))
		return nil, status.Error(codes.Internal, "failed to list links")
	}

	resp := &proto.ListLinksResponse{Links: make([]*proto.Link, len(links))}
	for i := range links {
		resp.Links[i] = toProtoLink(&links[i])
	}
	return resp, nil
}

// ListShortcodes возвращает список коротких кодов
func (s *Server) ListShortcodes(ctx context.Context, req *proto.ListShortcodesRequest) (*proto.ListShortcodesResponse, error) {
	list, err := s.svc.ListCodes()
	if err != nil {
		s.logger.Error("Failed to list short codes", zap.Error(err))
		return nil, status.Error(codes.Internal, "failed to list short codes")
	}
	return &proto.ListShortcodesResponse{ShortCodes: list}, nil
}

// ResolveLink разрешает короткий код в целевой URL и учитывает визит
func (s *Server) ResolveLink(ctx context.Context, req *proto.ResolveLinkRequest) (*proto.ResolveLinkResponse, error) {
	target, err := s.svc.Resolve(req.ShortCode)
	if err != nil {
		return nil, s.mapError(err)
	}
	return &proto.ResolveLinkResponse{OriginalURL: target}, nil
}

// Ping проверяет состояние сервиса
func (s *Server) Ping(ctx context.Context, req *proto.PingRequest) (*proto.PingResponse, error) {
	if s.db == nil {
		return &proto.PingResponse{DatabaseAvailable: false}, nil
	}
	err := s.db.Ping()
	return &proto.PingResponse{DatabaseAvailable: err == nil}, nil
}

// mapError переводит ошибки сервиса в статусы gRPC
func (s *Server) mapError(err error) error {
	switch {
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrEmptyCode),
		errors.Is(err, service.ErrCodeSlash),
		errors.Is(err, service.ErrInvalidCode),
		errors.Is(err, service.ErrInvalidURL),
		errors.Is(err, service.ErrEmptyURL),
		errors.Is(err, service.ErrInvalidEnabled),
		errors.Is(err, service.ErrEmptyBatch),
		errors.Is(err, service.ErrNoFields):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return status.Error(codes.NotFound, "short code not found")
	case errors.Is(err, repository.ErrCodeExists):
		return status.Error(codes.AlreadyExists, "short code already exists")
	default:
		s.logger.Error("Internal gRPC error", zap.Error(err))
		return status.Error(codes.Internal, "internal server error")
	}
}

// toProtoLink конвертирует модель ссылки в gRPC тип
func toProtoLink(link *models.Link) *proto.Link {
	out := &proto.Link{
		ShortCode:   link.ShortCode,
		OriginalURL: link.OriginalURL,
		IsEnabled:   int32(link.IsEnabled),
		CreatedAt:   link.CreatedAt.Format(time.RFC3339),
		VisitCount:  link.VisitCount,
	}
	if link.Description != nil {
		out.Description = *link.Description
		out.HasDesc = true
	}
	if link.LastVisitedAt != nil {
		out.LastVisitedAt = link.LastVisitedAt.Format(time.RFC3339)
	}
	return out
}
