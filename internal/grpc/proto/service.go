// Package proto содержит интерфейс gRPC сервиса управления ссылками
package proto

import (
	"context"

	"google.golang.org/grpc"
)

// LinkServiceServer представляет интерфейс gRPC сервиса
type LinkServiceServer interface {
	CreateLink(ctx context.Context, req *CreateLinkRequest) (*CreateLinkResponse, error)
	BatchCreateLinks(ctx context.Context, req *BatchCreateLinksRequest) (*BatchCreateLinksResponse, error)
	GetLink(ctx context.Context, req *GetLinkRequest) (*GetLinkResponse, error)
	UpdateLink(ctx context.Context, req *UpdateLinkRequest) (*UpdateLinkResponse, error)
	DeleteLink(ctx context.Context, req *DeleteLinkRequest) (*DeleteLinkResponse, error)
	ListLinks(ctx context.Context, req *ListLinksRequest) (*ListLinksResponse, error)
	ListShortcodes(ctx context.Context, req *ListShortcodesRequest) (*ListShortcodesResponse, error)
	ResolveLink(ctx context.Context, req *ResolveLinkRequest) (*ResolveLinkResponse, error)
	Ping(ctx context.Context, req *PingRequest) (*PingResponse, error)
}

// UnimplementedLinkServiceServer предоставляет базовую реализацию интерфейса
type UnimplementedLinkServiceServer struct{}

// CreateLink предоставляет базовую реализацию создания ссылки
func (UnimplementedLinkServiceServer) CreateLink(ctx context.Context, req *CreateLinkRequest) (*CreateLinkResponse, error) {
	return nil, nil
}

// BatchCreateLinks предоставляет базовую реализацию пакетного создания
func (UnimplementedLinkServiceServer) BatchCreateLinks(ctx context.Context, req *BatchCreateLinksRequest) (*BatchCreateLinksResponse, error) {
	return nil, nil
}

// GetLink предоставляет базовую реализацию получения ссылки
func (UnimplementedLinkServiceServer) GetLink(ctx context.Context, req *GetLinkRequest) (*GetLinkResponse, error) {
	return nil, nil
}

// UpdateLink предоставляет базовую реализацию обновления ссылки
func (UnimplementedLinkServiceServer) UpdateLink(ctx context.Context, req *UpdateLinkRequest) (*UpdateLinkResponse, error) {
	return nil, nil
}

// DeleteLink предоставляет базовую реализацию удаления ссылки
func (UnimplementedLinkServiceServer) DeleteLink(ctx context.Context, req *DeleteLinkRequest) (*DeleteLinkResponse, error) {
	return nil, nil
}

// ListLinks предоставляет базовую реализацию получения всех ссылок
func (UnimplementedLinkServiceServer) ListLinks(ctx context.Context, req *ListLinksRequest) (*ListLinksResponse, error) {
	return nil, nil
}

// ListShortcodes предоставляет базовую реализацию получения списка кодов
func (UnimplementedLinkServiceServer) ListShortcodes(ctx context.Context, req *ListShortcodesRequest) (*ListShortcodesResponse, error) {
	return nil, nil
}

// ResolveLink предоставляет базовую реализацию разрешения короткого кода
func (UnimplementedLinkServiceServer) ResolveLink(ctx context.Context, req *ResolveLinkRequest) (*ResolveLinkResponse, error) {
	return nil, nil
}

// Ping предоставляет базовую реализацию проверки состояния
func (UnimplementedLinkServiceServer) Ping(ctx context.Context, req *PingRequest) (*PingResponse, error) {
	return nil, nil
}

// RegisterLinkServiceServer регистрирует реализацию сервиса в gRPC сервере
func RegisterLinkServiceServer(s *grpc.Server, srv LinkServiceServer) {
	// В реальном проекте это было бы автоматически сгенерировано protoc
	// Здесь заглушка для демонстрации
}
