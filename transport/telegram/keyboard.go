package telegram

import "github.com/go-telegram/bot/models"

// createKeyboard builds a reply keyboard from button labels, two per row.
func createKeyboard(buttons ...string) *models.ReplyKeyboardMarkup {
	var rows [][]models.KeyboardButton
	for i := 0; i < len(buttons); i += 2 {
		row := []models.KeyboardButton{{Text: buttons[i]}}
		if i+1 < len(buttons) {
			row = append(row, models.KeyboardButton{Text: buttons[i+1]})
		}
		rows = append(rows, row)
	}
	return &models.ReplyKeyboardMarkup{
		Keyboard:        rows,
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}
}
