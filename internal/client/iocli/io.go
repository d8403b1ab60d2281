package iocli

//go:generate moq -out io_mock.go . IO

// IO ввод и вывод команд CLI.
// Write позволяет передавать IO как io.Writer (навигация, JSON вывод).
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	// ReadInput печатает prompt и читает строку без пробелов по краям
	ReadInput(prompt string) (string, error)
	// ReadPassword читает строку без эха, если ввод - терминал
	ReadPassword(prompt string) (string, error)
	// Confirm задает вопрос да/нет, по умолчанию нет
	Confirm(prompt string) (bool, error)
	Write(p []byte) (n int, err error)
}
