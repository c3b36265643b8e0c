package repository

import (
	"sync"
	"time"

	"github.com/tempizhere/golinks/internal/models"
)

// MemoryRepository реализует интерфейс Repository с использованием map.
// Используется при запуске без DSN базы данных и в тестах.
type MemoryRepository struct {
	store map[string]*models.Link
	order []string
	mutex sync.RWMutex
}

// NewMemoryRepository создаёт новый экземпляр MemoryRepository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		store: make(map[string]*models.Link),
		order: make([]string, 0),
	}
}

// Insert сохраняет новую ссылку в хранилище
func (r *MemoryRepository) Insert(code, url string, description *string, enabled int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.store[code]; exists {
		return ErrCodeExists
	}
	r.store[code] = &models.Link{
		ShortCode:   code,
		OriginalURL: url,
		Description: description,
		IsEnabled:   enabled,
		CreatedAt:   time.Now(),
		VisitCount:  0,
	}
	r.order = append(r.order, code)
	return nil
}

// UpdateFields применяет патч к существующей записи
func (r *MemoryRepository) UpdateFields(code string, patch models.LinkPatch) (int64, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	link, exists := r.store[code]
	if !exists || patch.Empty() {
		return 0, nil
	}
	if patch.OriginalURL != nil {
		link.OriginalURL = *patch.OriginalURL
	}
	if patch.IsEnabled != nil {
		link.IsEnabled = *patch.IsEnabled
	}
	if patch.SetDescription {
		link.Description = patch.Description
	}
	return 1, nil
}

// Get возвращает копию ссылки по коду
func (r *MemoryRepository) Get(code string) (*models.Link, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	link, exists := r.store[code]
	if !exists {
		return nil, nil
	}
	copied := *link
	return &copied, nil
}

// GetAll возвращает все ссылки в порядке вставки
func (r *MemoryRepository) GetAll() ([]models.Link, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	links := make([]models.Link, 0, len(r.order))
	for _, code := range r.order {
		if link, exists := r.store[code]; exists {
			links = append(links, *link)
		}
	}
	return links, nil
}

// GetCodes возвращает список коротких кодов в порядке вставки
func (r *MemoryRepository) GetCodes() ([]string, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	codes := make([]string, 0, len(r.order))
	for _, code := range r.order {
		if _, exists := r.store[code]; exists {
			codes = append(codes, code)
		}
	}
	return codes, nil
}

// Delete удаляет ссылку по коду
func (r *MemoryRepository) Delete(code string) (int64, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.store[code]; !exists {
		return 0, nil
	}
	delete(r.store, code)
	for i, c := range r.order {
		if c == code {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

// IncrementVisit увеличивает счётчик визитов и выставляет время визита
func (r *MemoryRepository) IncrementVisit(code string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	link, exists := r.store[code]
	if !exists {
		return nil
	}
	now := time.Now()
	link.VisitCount++
	link.LastVisitedAt = &now
	return nil
}
