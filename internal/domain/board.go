package domain

import "encoding/json"

// Board: доска Trello.
//
// ID и Name обязательны. Остальные поля опциональны:
// если сервис их не прислал, они остаются nil.
// Документация: https://developer.atlassian.com/cloud/trello/rest/api-group-boards/
type Board struct {
	// ID присваивается сервисом и не меняется.
	ID string `json:"id" yaml:"id"`

	Name string `json:"name" yaml:"name"`

	URL *string `json:"url,omitempty" yaml:"url,omitempty"`

	// Description приходит в поле desc.
	Description *string `json:"desc,omitempty" yaml:"desc,omitempty"`

	// Closed: доска в архиве.
	Closed *bool `json:"closed,omitempty" yaml:"closed,omitempty"`

	Starred *bool `json:"starred,omitempty" yaml:"starred,omitempty"`
}

type boardJSON struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	URL         *string `json:"url"`
	Description *string `json:"desc"`
	Closed      *bool   `json:"closed"`
	Starred     *bool   `json:"starred"`
}

// UnmarshalJSON декодирует доску и проверяет обязательные поля.
func (b *Board) UnmarshalJSON(data []byte) error {
	var raw boardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := requireString("board", "id", raw.ID)
	if err != nil {
		return err
	}
	name, err := requireString("board", "name", raw.Name)
	if err != nil {
		return err
	}

	*b = Board{
		ID:          id,
		Name:        name,
		URL:         raw.URL,
		Description: raw.Description,
		Closed:      raw.Closed,
		Starred:     raw.Starred,
	}
	return nil
}

// String возвращает короткое описание доски.
func (b Board) String() string {
	return "Board " + b.Name + " [ID: " + b.ID + "]"
}
