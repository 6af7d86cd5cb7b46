package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// IsUUID проверяет, что строка является корректным UUID
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// PathUUID извлекает UUID параметр пути. ok=false, если параметр отсутствует или некорректен.
func PathUUID(r *http.Request, name string) (string, bool) {
	value := mux.Vars(r)[name]
	if !IsUUID(value) {
		return value, false
	}
	return value, true
}

// QueryUUID извлекает необязательный UUID параметр запроса. Пустое значение даёт nil.
func QueryUUID(q url.Values, name string) (*string, error) {
	value := q.Get(name)
	if value == "" {
		return nil, nil
	}
	if !IsUUID(value) {
		return nil, fmt.Errorf("invalid %s %q", name, value)
	}
	return &value, nil
}
