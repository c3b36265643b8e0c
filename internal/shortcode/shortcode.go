// Package shortcode содержит нормализацию, валидацию и генерацию коротких кодов
package shortcode

import (
	"crypto/rand"
	"math/big"
	"regexp"
	"strings"
)

// DefaultLength задаёт длину генерируемого кода по умолчанию
const DefaultLength = 4

// randomAlphabet — алфавит генерации случайных кодов
const randomAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// codePattern — допустимый формат короткого кода
var codePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Normalize обрезает пробелы и приводит код к нижнему регистру.
// Возвращает пустую строку, если после обрезки ничего не осталось.
func Normalize(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	return strings.ToLower(trimmed)
}

// IsValid проверяет формат короткого кода: непустой после обрезки,
// без символа '/' и только из букв, цифр, дефиса и подчёркивания
func IsValid(code string) bool {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return false
	}
	if strings.Contains(trimmed, "/") {
		return false
	}
	return codePattern.MatchString(trimmed)
}

// GenerateRandom генерирует случайный код заданной длины из строчных букв и цифр
func GenerateRandom(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}
	max := big.NewInt(int64(len(randomAlphabet)))
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = randomAlphabet[n.Int64()]
	}
	return string(code), nil
}
