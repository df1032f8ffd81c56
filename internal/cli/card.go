package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shaiso/trellocli/internal/domain"
	"github.com/shaiso/trellocli/internal/telemetry"
)

// NewCreateCardCmd создаёт команду create-card.
//
// Метки передаются после комментария через пробел: каждое оставшееся
// слово становится отдельной меткой, повторы отбрасываются.
func NewCreateCardCmd(clientFn ClientFunc, outputFn OutputFunc, logger logrus.FieldLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "create-card COLUMN_ID NAME COMMENT [LABEL...]",
		Short: "Create a card with a comment and labels",
		Long: `Create a card in a column, attach a comment and add one lime label per
distinct label name.

Trello has no transactions: if the comment or a label cannot be created,
the card itself already exists and is left as is.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := clientFn()
			if err != nil {
				return err
			}
			out := outputFn()

			columnID, name, comment := args[0], args[1], args[2]
			labels := splitLabels(args[3:])

			card, err := client.CreateCard(cmd.Context(), columnID, name, comment, labels)
			if err != nil {
				if card != nil && !card.Stage.IsTerminal() {
					telemetry.WithColumnID(logger, columnID).WithFields(logrus.Fields{
						"card_id": card.ID,
						"stage":   card.Stage,
					}).Warn("card was created but not fully configured")
				}
				return err
			}

			out.Banner(fmt.Sprintf("New card added: %s", card.ID))
			return out.Print([]string{"#", "FIELD", "VALUE"}, cardRows(card), card)
		},
	}
}

// splitLabels разбивает аргументы на слова, так что
// `a b` и `"a b"` дают одинаковый результат.
func splitLabels(args []string) []string {
	var labels []string
	for _, a := range args {
		labels = append(labels, strings.Fields(a)...)
	}
	return labels
}

func cardRows(card *domain.Card) [][]string {
	fields := []struct {
		name  string
		value string
	}{
		{"board_id", card.BoardID},
		{"column_id", card.ColumnID},
		{"name", formatString(card.Name)},
		{"comment", card.Comment},
		{"comment_id", formatString(card.CommentID)},
		{"pos", formatFloat(card.Pos)},
		{"short_url", formatString(card.ShortURL)},
		{"labels", strings.Join(card.Labels, ", ")},
		{"label_ids", strings.Join(card.LabelIDs, ", ")},
	}

	rows := make([][]string, len(fields))
	for i, f := range fields {
		rows[i] = []string{strconv.Itoa(i + 1), f.name, f.value}
	}
	return rows
}
