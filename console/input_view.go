package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	purchaseAmountPrompt = "Please enter the purchase amount."
	winningNumbersPrompt = "Please enter the winning numbers."
	bonusNumberPrompt    = "Please enter the bonus number."
)

// InputView prompts the player and reads one line per answer
type InputView struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewInputView creates an input view reading from in and printing prompts to out
func NewInputView(in io.Reader, out io.Writer) *InputView {
	return &InputView{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (v *InputView) AskPurchaseAmount() (string, error) {
	return v.ask(purchaseAmountPrompt)
}

func (v *InputView) AskWinningNumbers() (string, error) {
	return v.ask(winningNumbersPrompt)
}

func (v *InputView) AskBonusNumber() (string, error) {
	return v.ask(bonusNumberPrompt)
}

func (v *InputView) ask(prompt string) (string, error) {
	fmt.Fprintln(v.out, prompt)

	if !v.scanner.Scan() {
		if err := v.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", fmt.Errorf("input closed before answering %q: %w", prompt, io.ErrUnexpectedEOF)
	}
	return strings.TrimRight(v.scanner.Text(), "\r"), nil
}
