// Package checker implements the pyp-cli commands
package checker

import (
	"context"
	"fmt"
	"io"
	logger "log"
	"strconv"

	"github.com/OpenTransitTools/picoyplaca/business/data/holiday"
	"github.com/OpenTransitTools/picoyplaca/business/data/picoplaca"
)

const (
	platePrompt = "Ingrese la placa del vehículo XXX-YYYY: "
	datePrompt  = "Ingrese la fecha YYYY-MM-DD: "
	timePrompt  = "Ingrese la hora y el minuto HH:MM: "
)

// RunCheck evaluates the plate, date and time given in args, asking prompter for those missing,
// and writes the verdict message to out
func RunCheck(ctx context.Context,
	log *logger.Logger,
	evaluator *picoplaca.Evaluator,
	prompter *Prompter,
	out io.Writer,
	args []string) error {

	prompts := []string{platePrompt, datePrompt, timePrompt}
	answers := make([]string, len(prompts))
	for i, prompt := range prompts {
		if i < len(args) {
			answers[i] = args[i]
			continue
		}
		answer, err := prompter.Ask(prompt)
		if err != nil {
			return err
		}
		answers[i] = answer
	}

	verdict, err := evaluator.Check(ctx, answers[0], answers[1], answers[2])
	if err != nil {
		return err
	}
	log.Printf("plate %s on %s (%s) at %s: permitted %t, reason %s",
		verdict.Plate, verdict.Date, verdict.Weekday, verdict.Time, verdict.Permitted, verdict.Reason)

	_, err = fmt.Fprintln(out, verdict.Message())
	return err
}

// ListHolidays writes every holiday observed in year, one per line in date order
func ListHolidays(out io.Writer, calendar *holiday.Calendar, year string) error {
	if len(year) == 0 {
		return fmt.Errorf("expected year with command holidays")
	}
	y, err := strconv.Atoi(year)
	if err != nil || y < 1 {
		return fmt.Errorf("unable to parse year %s", year)
	}
	holidays := calendar.HolidaysForYear(y)
	for _, date := range holidays.Dates() {
		if _, err = fmt.Fprintf(out, "%s %s\n", date, holidays[date]); err != nil {
			return err
		}
	}
	return nil
}
