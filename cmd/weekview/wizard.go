package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"weekview/pkg/config"
)

// runInitWizard asks for the grid options interactively and writes a
// starter config file.
func runInitWizard(path string) error {
	opts := config.Default()

	minTime := strconv.Itoa(opts.MinTime)
	maxTime := strconv.Itoa(opts.MaxTime)
	slotDuration := strconv.Itoa(opts.SlotDuration)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First visible hour (0-23)").
				Value(&minTime).
				Validate(hourInRange),
			huh.NewInput().
				Title("Last visible hour (0-23)").
				Value(&maxTime).
				Validate(hourInRange),
			huh.NewSelect[string]().
				Title("Slot duration").
				Options(
					huh.NewOption("15 minutes", "15"),
					huh.NewOption("30 minutes", "30"),
					huh.NewOption("60 minutes", "60"),
				).
				Value(&slotDuration),
			huh.NewSelect[string]().
				Title("Time format").
				Options(
					huh.NewOption("12-hour (9AM)", config.Format12h),
					huh.NewOption("24-hour (09:00)", config.Format24h),
				).
				Value(&opts.TimeFormat),
			huh.NewConfirm().
				Title("Show weekends?").
				Value(&opts.ShowWeekends),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	opts.MinTime, _ = strconv.Atoi(minTime)
	opts.MaxTime, _ = strconv.Atoi(maxTime)
	opts.SlotDuration, _ = strconv.Atoi(slotDuration)

	if err := opts.Validate(); err != nil {
		return err
	}
	if err := opts.Save(path); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}

func hourInRange(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	if n < 0 || n > 23 {
		return fmt.Errorf("hour %d out of range 0-23", n)
	}
	return nil
}
