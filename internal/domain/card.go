package domain

import "encoding/json"

// Card: карточка в колонке.
//
// Card строится из ответа на создание карточки, затем клиент
// дозаполняет Comment, CommentID, Labels и LabelIDs по мере
// выполнения зависимых запросов. Stage показывает, до какого шага
// дошло создание.
type Card struct {
	// ID присваивается сервисом при создании.
	ID string `json:"id" yaml:"id"`

	BoardID string `json:"idBoard" yaml:"idBoard"`

	// ColumnID: ссылка на колонку (idList).
	ColumnID string `json:"idList" yaml:"idList"`

	Name *string `json:"name,omitempty" yaml:"name,omitempty"`

	// Comment: текст комментария. Сервис его не возвращает,
	// поэтому он хранится на стороне клиента.
	Comment string `json:"comment" yaml:"comment"`

	// CommentID заполняется после создания комментария.
	CommentID *string `json:"commentId,omitempty" yaml:"commentId,omitempty"`

	Pos *float64 `json:"pos,omitempty" yaml:"pos,omitempty"`

	ShortURL *string `json:"shortUrl,omitempty" yaml:"shortUrl,omitempty"`

	// Labels: уникальные имена меток в порядке первого появления.
	Labels []string `json:"labels" yaml:"labels"`

	// LabelIDs позиционно соответствуют Labels. После частичного сбоя
	// их может быть меньше, чем Labels.
	LabelIDs []string `json:"labelIds" yaml:"labelIds"`

	Stage CardStage `json:"stage" yaml:"stage"`
}

type cardJSON struct {
	ID       *string  `json:"id"`
	BoardID  *string  `json:"idBoard"`
	ColumnID *string  `json:"idList"`
	Name     *string  `json:"name"`
	Pos      *float64 `json:"pos"`
	ShortURL *string  `json:"shortUrl"`
}

// UnmarshalJSON декодирует ответ сервиса на создание карточки.
// Локальные поля получают значения по умолчанию.
func (c *Card) UnmarshalJSON(data []byte) error {
	var raw cardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := requireString("card", "id", raw.ID)
	if err != nil {
		return err
	}
	boardID, err := requireString("card", "idBoard", raw.BoardID)
	if err != nil {
		return err
	}
	columnID, err := requireString("card", "idList", raw.ColumnID)
	if err != nil {
		return err
	}

	*c = Card{
		ID:       id,
		BoardID:  boardID,
		ColumnID: columnID,
		Name:     raw.Name,
		Pos:      raw.Pos,
		ShortURL: raw.ShortURL,
		Labels:   []string{},
		LabelIDs: []string{},
		Stage:    CardStageCreated,
	}
	return nil
}

// String возвращает короткое описание карточки.
func (c Card) String() string {
	name := ""
	if c.Name != nil {
		name = *c.Name
	}
	return "Card \"" + name + "\" [Board ID " + c.BoardID + "]"
}

// UniqueLabels убирает повторы и пустые имена, сохраняя порядок
// первого появления.
func UniqueLabels(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
