package domain

import "encoding/json"

// Column: колонка доски. В API Trello колонки называются "lists".
type Column struct {
	ID string `json:"id" yaml:"id"`

	// BoardID: ссылка на родительскую доску (idBoard).
	BoardID string `json:"idBoard" yaml:"idBoard"`

	Name string `json:"name" yaml:"name"`

	// Pos: позиция среди соседних колонок, задаёт порядок.
	Pos *float64 `json:"pos,omitempty" yaml:"pos,omitempty"`
}

type columnJSON struct {
	ID      *string  `json:"id"`
	BoardID *string  `json:"idBoard"`
	Name    *string  `json:"name"`
	Pos     *float64 `json:"pos"`
}

// UnmarshalJSON декодирует колонку и проверяет обязательные поля.
func (c *Column) UnmarshalJSON(data []byte) error {
	var raw columnJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := requireString("column", "id", raw.ID)
	if err != nil {
		return err
	}
	boardID, err := requireString("column", "idBoard", raw.BoardID)
	if err != nil {
		return err
	}
	name, err := requireString("column", "name", raw.Name)
	if err != nil {
		return err
	}

	*c = Column{ID: id, BoardID: boardID, Name: name, Pos: raw.Pos}
	return nil
}

// String возвращает короткое описание колонки.
func (c Column) String() string {
	return "Column " + c.Name + " [Board ID " + c.BoardID + "]"
}
