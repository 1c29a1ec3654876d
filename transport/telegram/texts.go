package telegram

// Тексты бота. Пользовательские сообщения — на русском.
const (
	textGreeting = "Привет! Я бот-напоминалка. Добавь событие командой /add, и я напомню о нём за час."

	textHelp = "Команды:\n" +
		"/add <название> ГГГГ-ММ-ДД ЧЧ:ММ — добавить напоминание\n" +
		"/today — дела на сегодня\n" +
		"/tomorrow — дела на завтра\n" +
		"/schedule — формат команды /add"

	textSchedule = "Чтобы добавить напоминание, отправь:\n" +
		"/add <название события> ГГГГ-ММ-ДД ЧЧ:ММ\n" +
		"Например: /add Встреча 2024-01-01 12:00"

	textAdded       = "Напоминание успешно записано!"
	textTooSoon     = "До события осталось меньше часа. Напоминание записано, но предупредить за час я уже не успею."
	textInPast      = "Эта дата уже прошла. Укажи дату и время в будущем."
	textBadDateTime = "Некорректная дата или время. Формат: ГГГГ-ММ-ДД ЧЧ:ММ."
	textBadCommand  = "Неверный формат команды. Пример: /add Встреча 2024-01-01 12:00"

	textNothingToday    = "На сегодня нет запланированных дел."
	textNothingTomorrow = "На завтра нет запланированных дел."
	textListToday       = "Список напоминаний на сегодня:"
	textListTomorrow    = "Список напоминаний на завтра:"

	textReminder = "Через час состоится событие: %s"
	textUnknown  = "Я понимаю только команды. Отправь /help, чтобы увидеть список."
)
