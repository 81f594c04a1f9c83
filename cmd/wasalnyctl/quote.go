// README: quote command; prices a trip and prints the WhatsApp message and link.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wasalny/internal/modules/catalog"
	"wasalny/internal/modules/pricing"
	"wasalny/internal/modules/quote"
	"wasalny/internal/service"
)

type quoteFlags struct {
	from, to, vehicle      string
	passengers             int
	date, clock            string
	roundTrip              bool
	returnDate, returnTime string
	services               []string
	strategy               string
	name                   string
}

func newQuoteCmd(c *cli) *cobra.Command {
	var f quoteFlags
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a trip and print the booking message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			if f.strategy != "" {
				cfg.Pricing.Strategy = f.strategy
			}
			app, err := service.NewApp(cmd.Context(), cfg, c.logger)
			if err != nil {
				return err
			}
			defer app.Close()

			trip, err := f.tripDetails(cfg.Location())
			if err != nil {
				return err
			}
			res, err := app.Pricing.Estimate(cmd.Context(), trip)
			if err != nil {
				return errors.New(pricing.Message(err))
			}

			fm := quote.NewFormatter(app.Catalog.Settings())
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, fm.Message(res, f.name))
			for _, warn := range res.Warnings {
				fmt.Fprintf(w, "! %s\n", warn)
			}
			fmt.Fprintln(w, fm.WhatsAppLink(res, f.name))
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.from, "from", "", "origin location id")
	fl.StringVar(&f.to, "to", "", "destination location id")
	fl.StringVar(&f.vehicle, "vehicle", string(catalog.VehicleSedan), "vehicle category")
	fl.IntVar(&f.passengers, "passengers", 2, "passenger count")
	fl.StringVar(&f.date, "date", "", "trip date YYYY-MM-DD (default tomorrow)")
	fl.StringVar(&f.clock, "time", "10:00", "trip time HH:MM")
	fl.BoolVar(&f.roundTrip, "round-trip", false, "price a round trip")
	fl.StringVar(&f.returnDate, "return-date", "", "return date YYYY-MM-DD")
	fl.StringVar(&f.returnTime, "return-time", "", "return time HH:MM")
	fl.StringSliceVar(&f.services, "service", nil, "additional service id (repeatable)")
	fl.StringVar(&f.strategy, "strategy", "", "fixed or dynamic (default from config)")
	fl.StringVar(&f.name, "name", "", "customer name for the message")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (f quoteFlags) tripDetails(loc *time.Location) (pricing.TripDetails, error) {
	date := time.Now().In(loc).AddDate(0, 0, 1)
	if f.date != "" {
		d, err := time.ParseInLocation(catalog.DateLayout, f.date, loc)
		if err != nil {
			return pricing.TripDetails{}, fmt.Errorf("--date: %w", err)
		}
		date = d
	}
	trip := pricing.TripDetails{
		From:            f.from,
		To:              f.to,
		VehicleCategory: catalog.VehicleCategory(f.vehicle),
		PassengerCount:  f.passengers,
		TripDate:        date,
		TripTime:        f.clock,
		IsRoundTrip:     f.roundTrip,
		Services:        f.services,
	}
	if f.roundTrip && f.returnDate != "" {
		d, err := time.ParseInLocation(catalog.DateLayout, f.returnDate, loc)
		if err != nil {
			return pricing.TripDetails{}, fmt.Errorf("--return-date: %w", err)
		}
		trip.ReturnDate = &d
		trip.ReturnTime = f.returnTime
	}
	return trip, nil
}
