package links

import (
	"encoding/csv"
	"io"
)

var csvHeader = []string{"unidade", "modalidade", "ingresso", "codigo", "titulo", "url"}

// WriteCSV renders the records as a spreadsheet for the admissions team.
// Records keep their incoming order; inert records appear with an empty
// url column.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.UnitName,
			rec.ModalityLabel,
			rec.TypeLabel,
			rec.Code,
			rec.ProcessTitle,
			rec.URL,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
