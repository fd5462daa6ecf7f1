// Package console реализует построчный ввод-вывод терминала и примитивы
// валидации с единым способом отмены (B / BACK).
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Input — результат примитива ввода: либо значение, либо отмена.
type Input[T any] struct {
	Value     T
	Cancelled bool
}

// Value оборачивает введённое значение.
func Value[T any](v T) Input[T] {
	return Input[T]{Value: v}
}

// Cancelled возвращает результат отмены.
func Cancelled[T any]() Input[T] {
	return Input[T]{Cancelled: true}
}

// MaxLineLength ограничивает длину строки ввода. Более длинная строка
// отбрасывается целиком, и подсказка выводится снова.
const MaxLineLength = 1024

// amountPattern допускает только обычную десятичную запись суммы без экспоненты.
var amountPattern = regexp.MustCompile(`^[+-]?(\d{1,9}(\.\d{1,6})?|\.\d{1,6})$`)

// Prompter читает строки из in и пишет подсказки и сообщения в out.
// Ошибка возвращается только при сбое чтения; конец ввода — io.EOF.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter создаёт Prompter поверх произвольных reader/writer.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Printf пишет форматированный текст в выход терминала.
func (p *Prompter) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// Println пишет строку в выход терминала.
func (p *Prompter) Println(args ...any) {
	_, _ = fmt.Fprintln(p.out, args...)
}

// Writer возвращает выход терминала.
func (p *Prompter) Writer() io.Writer {
	return p.out
}

// ReadLine выводит подсказку и читает одну строку без перевода строки.
// Строка длиннее MaxLineLength не возвращается: подсказка повторяется.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	for {
		p.Printf("%s", prompt)
		line, tooLong, err := p.readLine()
		if err != nil {
			return "", err
		}
		if tooLong {
			p.Println("Input too long.")
			continue
		}
		return line, nil
	}
}

// readLine читает строку по частям, не накапливая в памяти больше
// MaxLineLength байт.
func (p *Prompter) readLine() (string, bool, error) {
	var (
		buf     []byte
		tooLong bool
		started bool
	)
	for {
		chunk, isPrefix, err := p.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if started {
					break
				}
				return "", false, io.EOF
			}
			return "", false, fmt.Errorf("read input: %w", err)
		}
		started = true
		if !tooLong {
			if len(buf)+len(chunk) > MaxLineLength {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}
	return string(buf), tooLong, nil
}

// IsBack сообщает, является ли ввод токеном возврата.
func IsBack(raw string) bool {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "B", "BACK":
		return true
	default:
		return false
	}
}

// PositiveInt читает целое из одних десятичных цифр в диапазоне [min, max].
// max <= 0 означает отсутствие верхней границы.
func (p *Prompter) PositiveInt(prompt string, min, max int) (Input[int], error) {
	for {
		raw, err := p.ReadLine(prompt)
		if err != nil {
			return Input[int]{}, err
		}
		if IsBack(raw) {
			return Cancelled[int](), nil
		}

		text := strings.TrimSpace(raw)
		if !isDigits(text) {
			p.Println("Enter a whole number.")
			continue
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			p.Println("Number too large.")
			continue
		}
		if n < min || (max > 0 && n > max) {
			p.Println(rangeMessage(min, max))
			continue
		}
		return Value(n), nil
	}
}

// PositiveAmount читает неотрицательную денежную сумму в обычной десятичной
// записи: до 9 цифр целой части и до 6 дробной.
func (p *Prompter) PositiveAmount(prompt string) (Input[decimal.Decimal], error) {
	for {
		raw, err := p.ReadLine(prompt)
		if err != nil {
			return Input[decimal.Decimal]{}, err
		}
		if IsBack(raw) {
			return Cancelled[decimal.Decimal](), nil
		}

		text := strings.TrimSpace(raw)
		if !amountPattern.MatchString(text) {
			p.Println("Invalid.")
			continue
		}
		amount, err := decimal.NewFromString(text)
		if err != nil {
			p.Println("Invalid.")
			continue
		}
		if amount.IsNegative() {
			p.Println("Amount must not be negative.")
			continue
		}
		return Value(amount), nil
	}
}

// ChoiceFrom читает один из допустимых вариантов без учёта регистра и
// возвращает вариант в написании из options.
func (p *Prompter) ChoiceFrom(prompt string, options ...string) (Input[string], error) {
	for {
		raw, err := p.ReadLine(prompt)
		if err != nil {
			return Input[string]{}, err
		}
		if IsBack(raw) {
			return Cancelled[string](), nil
		}

		text := strings.TrimSpace(raw)
		for _, opt := range options {
			if strings.EqualFold(text, opt) {
				return Value(opt), nil
			}
		}
		p.Printf("Invalid. Enter %s.\n", strings.Join(options, " or "))
	}
}

// YesNo задаёт вопрос с ответом Y/N.
func (p *Prompter) YesNo(prompt string) (Input[bool], error) {
	choice, err := p.ChoiceFrom(prompt, "Y", "N")
	if err != nil || choice.Cancelled {
		return Input[bool]{Cancelled: choice.Cancelled}, err
	}
	return Value(choice.Value == "Y"), nil
}

// CardNumber читает номер карты, удаляя пробелы и дефисы. Длина не проверяется.
func (p *Prompter) CardNumber(prompt string) (Input[string], error) {
	for {
		raw, err := p.ReadLine(prompt)
		if err != nil {
			return Input[string]{}, err
		}
		if IsBack(raw) {
			return Cancelled[string](), nil
		}

		card := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(raw))
		if !isDigits(card) {
			p.Println("Digits only.")
			continue
		}
		return Value(card), nil
	}
}

// PIN читает PIN как строку цифр, сохраняя ведущие нули. Длина не проверяется.
func (p *Prompter) PIN(prompt string) (Input[string], error) {
	for {
		raw, err := p.ReadLine(prompt)
		if err != nil {
			return Input[string]{}, err
		}
		if IsBack(raw) {
			return Cancelled[string](), nil
		}

		pin := strings.TrimSpace(raw)
		if !isDigits(pin) {
			p.Println("Digits only.")
			continue
		}
		return Value(pin), nil
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func rangeMessage(min, max int) string {
	if max > 0 {
		return fmt.Sprintf("Enter a number from %d to %d.", min, max)
	}
	return fmt.Sprintf("Enter a number of at least %d.", min)
}
