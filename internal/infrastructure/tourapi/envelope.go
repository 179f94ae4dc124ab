package tourapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Конверт ответа upstream:
// {response:{header:{resultCode,resultMsg},body:{items:{item:T|T[]},totalCount,...}}}.
// Поле item может быть объектом, массивом или отсутствовать вовсе;
// при пустой выдаче body.items приходит как пустая строка
// (артефакт XML->JSON конвертации на стороне upstream).
type envelope struct {
	Response struct {
		Header envelopeHeader `json:"header"`
		Body   envelopeBody   `json:"body"`
	} `json:"response"`
}

type envelopeHeader struct {
	ResultCode string `json:"resultCode"`
	ResultMsg  string `json:"resultMsg"`
}

type envelopeBody struct {
	Items      itemsField `json:"items"`
	TotalCount int        `json:"totalCount"`
	PageNo     int        `json:"pageNo"`
	NumOfRows  int        `json:"numOfRows"`
}

// UnmarshalJSON принимает и объект, и пустую строку:
// при ошибочном resultCode upstream отдаёт body как "".
func (b *envelopeBody) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte(`""`)) || bytes.Equal(trimmed, []byte("null")) {
		*b = envelopeBody{}
		return nil
	}

	type plain envelopeBody
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	*b = envelopeBody(p)
	return nil
}

// resultCodeOK - код успешного ответа upstream
const resultCodeOK = "0000"

type itemsField struct {
	Item json.RawMessage `json:"item"`
}

// UnmarshalJSON принимает и объект {item: ...}, и пустую строку "".
func (f *itemsField) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte(`""`)) || bytes.Equal(trimmed, []byte("null")) {
		f.Item = nil
		return nil
	}

	type plain itemsField
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	f.Item = p.Item
	return nil
}

func parseEnvelope(body []byte) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode upstream envelope: %w", err)
	}
	return &env, nil
}

// flexString принимает и строку, и число: upstream непоследователен
// в типах скалярных полей.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*s = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var str string
		if err := json.Unmarshal(trimmed, &str); err != nil {
			return err
		}
		*s = flexString(str)
		return nil
	}
	*s = flexString(trimmed)
	return nil
}

// decodeItems нормализует неоднозначное поле item к массиву:
// отсутствует -> пустой слайс, объект -> слайс из одного элемента,
// массив -> как есть. За пределы этого пакета неоднозначная форма не выходит.
func decodeItems[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`)) {
		return []T{}, nil
	}

	if trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("failed to decode item array: %w", err)
		}
		return items, nil
	}

	var single T
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return nil, fmt.Errorf("failed to decode single item: %w", err)
	}
	return []T{single}, nil
}
