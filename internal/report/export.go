package report

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/dealer-insights/internal/model"
)

// WriteXLSX writes the filtered dealers and their summary metrics to an
// XLSX workbook at path: a "Dealers" sheet with one row per dealer and a
// "Summary" sheet with the aggregate metrics and rating distribution.
func WriteXLSX(path string, dealers []model.Dealer) error {
	f := xlsx.NewFile()

	sheet, err := f.AddSheet("Dealers")
	if err != nil {
		return eris.Wrap(err, "export: add dealers sheet")
	}

	header := sheet.AddRow()
	for _, h := range []string{"Dealer", "Province", "Postal Code", "Rating", "Total Reviews", "Latitude", "Longitude"} {
		header.AddCell().SetString(h)
	}

	for _, d := range dealers {
		row := sheet.AddRow()
		row.AddCell().SetString(d.Name)
		row.AddCell().SetString(d.Province)
		row.AddCell().SetString(d.PostalCode)
		row.AddCell().SetFloat(d.Rating)
		row.AddCell().SetInt(d.TotalReviews)
		if d.HasCoordinates() {
			row.AddCell().SetFloat(*d.Latitude)
			row.AddCell().SetFloat(*d.Longitude)
		} else {
			row.AddCell().SetString("")
			row.AddCell().SetString("")
		}
	}

	summary, err := f.AddSheet("Summary")
	if err != nil {
		return eris.Wrap(err, "export: add summary sheet")
	}

	addPair := func(label, value string) {
		row := summary.AddRow()
		row.AddCell().SetString(label)
		row.AddCell().SetString(value)
	}

	addPair("Total Dealers", fmt.Sprintf("%d", Count(dealers)))
	if avg, ok := AverageRating(dealers); ok {
		addPair("Average Rating", fmt.Sprintf("%.2f", avg))
	} else {
		addPair("Average Rating", "n/a")
	}
	addPair("Total Reviews", fmt.Sprintf("%d", SumReviews(dealers)))

	summary.AddRow() // spacer
	distHeader := summary.AddRow()
	distHeader.AddCell().SetString("Rating")
	distHeader.AddCell().SetString("Dealers")
	for _, rc := range RatingDistribution(dealers) {
		row := summary.AddRow()
		row.AddCell().SetFloat(rc.Rating)
		row.AddCell().SetInt(rc.Count)
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "export: save workbook")
	}
	return nil
}
