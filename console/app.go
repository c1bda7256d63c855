// Package console runs one lottery draw as a prompt-driven terminal session.
package console

import (
	"context"
	"io"

	"lotto/domain/entities"
	"lotto/domain/interfaces"
	"lotto/domain/validation"

	log "github.com/sirupsen/logrus"
)

// App sequences the prompts of one draw and renders the results
type App struct {
	service      interfaces.LotteryService
	input        *InputView
	output       *OutputView
	retryOnError bool
}

// NewApp creates a console app. With retryOnError the failing prompt is asked again
// after rejected input; otherwise the first rejection ends the run.
func NewApp(service interfaces.LotteryService, in io.Reader, out io.Writer, retryOnError bool) *App {
	return &App{
		service:      service,
		input:        NewInputView(in, out),
		output:       NewOutputView(out),
		retryOnError: retryOnError,
	}
}

// Run plays one draw from purchase to profit rate
func (a *App) Run(ctx context.Context) error {
	purchase, err := prompt(ctx, a, a.input.AskPurchaseAmount, func(text string) (*interfaces.PurchaseResult, error) {
		return a.service.Purchase(ctx, text)
	})
	if err != nil {
		return err
	}
	a.output.DisplayTickets(purchase)

	winning, err := prompt(ctx, a, a.input.AskWinningNumbers, validation.ValidateWinningNumbers)
	if err != nil {
		return err
	}

	bonus, err := prompt(ctx, a, a.input.AskBonusNumber, func(text string) (entities.BonusNumber, error) {
		return validation.ValidateBonusNumber(text, winning)
	})
	if err != nil {
		return err
	}

	result, err := a.service.Settle(ctx, purchase, winning, bonus)
	if err != nil {
		a.output.DisplayError(err)
		return err
	}
	a.output.DisplayResults(result)

	return nil
}

// prompt asks until parse accepts the answer. Only validation errors are retried,
// and only when the app is configured to retry.
func prompt[T any](ctx context.Context, a *App, ask func() (string, error), parse func(string) (T, error)) (T, error) {
	var zero T
	for {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		text, err := ask()
		if err != nil {
			return zero, err
		}

		value, err := parse(text)
		if err == nil {
			return value, nil
		}

		a.output.DisplayError(err)
		log.WithFields(log.Fields{
			"kind":  entities.KindOf(err),
			"input": text,
		}).Debug("Rejected input")

		if !a.retryOnError || !entities.IsValidationError(err) {
			return zero, err
		}
	}
}
