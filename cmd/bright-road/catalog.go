package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/PabloGalante/bright-road/internal/catalog"
	"github.com/PabloGalante/bright-road/internal/domain"
)

var (
	catalogSearch    string
	catalogHighlight string
	catalogTier      string
	catalogCarType   string
)

var catalogCmd = &cobra.Command{
	Use:       "catalog [destinations|hotels|cars]",
	Short:     "List the travel catalog",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"destinations", "hotels", "cars"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return err
		}

		section := "destinations"
		if len(args) == 1 {
			section = args[0]
		}
		return printCatalog(cmd.OutOrStdout(), cat, section)
	},
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogSearch, "search", "q", "", "filter by name (and location for destinations and hotels)")
	catalogCmd.Flags().StringVar(&catalogHighlight, "highlight", "", "destinations: only those with this highlight")
	catalogCmd.Flags().StringVar(&catalogTier, "tier", "all", "hotels: all, under-250, luxury or top-rated")
	catalogCmd.Flags().StringVar(&catalogCarType, "type", "", "cars: only this car type")
}

func printCatalog(out io.Writer, cat *catalog.Store, section string) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	switch section {
	case "destinations":
		writeDestinations(tw, cat.FilterDestinations(catalog.DestinationFilter{
			Search:    catalogSearch,
			Highlight: catalogHighlight,
		}))
	case "hotels":
		tier, err := catalog.ParseHotelTier(catalogTier)
		if err != nil {
			return err
		}
		writeHotels(tw, cat.FilterHotels(catalog.HotelFilter{Search: catalogSearch, Tier: tier}))
	case "cars":
		writeCars(tw, cat.FilterCars(catalog.CarFilter{Search: catalogSearch, Type: catalogCarType}))
	default:
		return fmt.Errorf("unknown catalog section %q", section)
	}

	return tw.Flush()
}

func writeDestinations(w io.Writer, ds []domain.Destination) {
	fmt.Fprintln(w, "ID\tNAME\tLOCATION\tHIGHLIGHTS")
	for _, d := range ds {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.ID, d.Name, d.Location, strings.Join(d.Highlights, ", "))
	}
}

func writeHotels(w io.Writer, hs []domain.Hotel) {
	fmt.Fprintln(w, "ID\tNAME\tLOCATION\tPRICE/NIGHT\tRATING")
	for _, h := range hs {
		fmt.Fprintf(w, "%s\t%s\t%s\t$%s\t%s\n", h.ID, h.Name, h.Location, price(h.Price), strconv.FormatFloat(h.Rating, 'f', 1, 64))
	}
}

func writeCars(w io.Writer, cs []domain.Car) {
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tPRICE/DAY")
	for _, c := range cs {
		fmt.Fprintf(w, "%s\t%s\t%s\t$%s\n", c.ID, c.Name, c.Type, price(c.PricePerDay))
	}
}

func price(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
