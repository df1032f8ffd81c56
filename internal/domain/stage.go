package domain

// CardStage: шаг создания карточки.
//
// Жизненный цикл:
//
//	CREATED → COMMENT_ATTACHED → LABELS_ATTACHED → DONE
//
// Транзакций у сервиса нет. Если шаг после CREATED упал, карточка
// на сервере остаётся в состоянии последнего успешного шага.
type CardStage string

const (
	// CardStageCreated: карточка создана, базовые поля заполнены.
	CardStageCreated CardStage = "CREATED"

	// CardStageCommentAttached: комментарий добавлен.
	CardStageCommentAttached CardStage = "COMMENT_ATTACHED"

	// CardStageLabelsAttached: добавлена хотя бы часть меток.
	CardStageLabelsAttached CardStage = "LABELS_ATTACHED"

	// CardStageDone: все шаги выполнены.
	CardStageDone CardStage = "DONE"
)

// IsTerminal возвращает true, если создание завершено полностью.
func (s CardStage) IsTerminal() bool {
	return s == CardStageDone
}
