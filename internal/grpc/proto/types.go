// Package proto содержит определения типов для gRPC сервиса управления ссылками
package proto

// Link представляет ссылку в gRPC ответах
type Link struct {
	ShortCode     string `json:"short_code"`
	OriginalURL   string `json:"original_url"`
	Description   string `json:"description"`
	HasDesc       bool   `json:"has_desc"`
	IsEnabled     int32  `json:"is_enabled"`
	CreatedAt     string `json:"created_at"`
	LastVisitedAt string `json:"last_visited_at"`
	VisitCount    int64  `json:"visit_count"`
}

// CreateLinkRequest представляет запрос на создание ссылки
type CreateLinkRequest struct {
	ShortCode   string  `json:"short_code"`
	URL         string  `json:"url"`
	Description *string `json:"description,omitempty"`
}

// CreateLinkResponse представляет ответ на создание ссылки
type CreateLinkResponse struct {
	ShortCode   string `json:"short_code"`
	ShortURL    string `json:"short_url"`
	OriginalURL string `json:"original_url"`
}

// BatchCreateItem представляет элемент пакетного запроса
type BatchCreateItem struct {
	ShortCode   string  `json:"short_code"`
	URL         string  `json:"url"`
	Description *string `json:"description,omitempty"`
}

// BatchCreateLinksRequest представляет запрос пакетного создания
type BatchCreateLinksRequest struct {
	Items []*BatchCreateItem `json:"items"`
}

// BatchCreatedLink представляет успешный элемент пакетного ответа
type BatchCreatedLink struct {
	ShortCode   string `json:"short_code"`
	ShortURL    string `json:"short_url"`
	OriginalURL string `json:"original_url"`
}

// BatchCreateLinkError представляет ошибку по элементу пакета
type BatchCreateLinkError struct {
	OriginalURL string `json:"original_url"`
	ShortCode   string `json:"short_code"`
	Error       string `json:"error"`
}

// BatchCreateLinksResponse представляет ответ пакетного создания
type BatchCreateLinksResponse struct {
	Success []*BatchCreatedLink     `json:"success"`
	Errors  []*BatchCreateLinkError `json:"errors"`
}

// GetLinkRequest представляет запрос на получение ссылки
type GetLinkRequest struct {
	ShortCode string `json:"short_code"`
}

// GetLinkResponse представляет ответ с полной записью ссылки
type GetLinkResponse struct {
	Link *Link `json:"link"`
}

// UpdateLinkRequest представляет запрос частичного обновления ссылки.
// Nil-поле не изменяет колонку; ClearDescription явно очищает описание.
type UpdateLinkRequest struct {
	ShortCode        string  `json:"short_code"`
	URL              *string `json:"url,omitempty"`
	IsEnabled        *int32  `json:"is_enabled,omitempty"`
	Description      *string `json:"description,omitempty"`
	ClearDescription bool    `json:"clear_description,omitempty"`
}

// UpdateLinkResponse представляет ответ на обновление ссылки
type UpdateLinkResponse struct {
	Updated bool `json:"updated"`
}

// DeleteLinkRequest представляет запрос на удаление ссылки
type DeleteLinkRequest struct {
	ShortCode string `json:"short_code"`
}

// DeleteLinkResponse представляет ответ на удаление ссылки
type DeleteLinkResponse struct {
	Deleted bool `json:"deleted"`
}

// ListLinksRequest представляет запрос списка ссылок
type ListLinksRequest struct{}

// ListLinksResponse представляет ответ со всеми ссылками
type ListLinksResponse struct {
	Links []*Link `json:"links"`
}

// ListShortcodesRequest представляет запрос списка коротких кодов
type ListShortcodesRequest struct{}

// ListShortcodesResponse представляет ответ со списком коротких кодов
type ListShortcodesResponse struct {
	ShortCodes []string `json:"short_codes"`
}

// ResolveLinkRequest представляет запрос разрешения короткого кода
type ResolveLinkRequest struct {
	ShortCode string `json:"short_code"`
}

// ResolveLinkResponse представляет ответ с целевым URL
type ResolveLinkResponse struct {
	OriginalURL string `json:"original_url"`
}

// PingRequest представляет запрос проверки состояния
type PingRequest struct{}

// PingResponse представляет ответ проверки состояния
type PingResponse struct {
	DatabaseAvailable bool `json:"database_available"`
}
