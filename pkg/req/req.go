package req

import (
	"encoding/json"
	"errors"
	"io"
)

// Decode Читает JSON тело запроса в T. Неизвестные поля - ошибка
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return payload, err
	}
	if dec.More() {
		return payload, errors.New("request body must contain a single JSON value")
	}
	return payload, nil
}
