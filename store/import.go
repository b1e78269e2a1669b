package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Priest98/whatsapp-CRM/models"
)

// ImportCustomers loads customers from a CSV or XLSX file with columns
// name, phone_number, tags, lead_status, notes. Tags are comma separated.
// Rows with an unknown lead status are skipped. Returns how many customers
// were added and how many rows were skipped.
func (s *Store) ImportCustomers(filename string, data []byte) (added, skipped int, err error) {
	rows, err := readAllRows(data, strings.ToLower(filepath.Ext(filename)))
	if err != nil {
		return 0, 0, err
	}
	for i, row := range rows {
		if len(row) < 2 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		// header row
		if i == 0 && strings.EqualFold(strings.TrimSpace(row[0]), "name") {
			continue
		}
		c := models.Customer{
			Name:        strings.TrimSpace(row[0]),
			PhoneNumber: strings.TrimSpace(row[1]),
			LeadStatus:  models.LeadNew,
		}
		if len(row) > 2 && strings.TrimSpace(row[2]) != "" {
			for _, t := range strings.Split(row[2], ",") {
				if t = strings.TrimSpace(t); t != "" {
					c.Tags = append(c.Tags, t)
				}
			}
		}
		if len(row) > 3 && strings.TrimSpace(row[3]) != "" {
			status, ok := models.ParseLeadStatus(row[3])
			if !ok {
				skipped++
				continue
			}
			c.LeadStatus = status
		}
		if len(row) > 4 {
			c.Notes = strings.TrimSpace(row[4])
		}
		s.AddCustomer(c)
		added++
	}
	return added, skipped, nil
}

func readAllRows(content []byte, ext string) ([][]string, error) {
	switch ext {
	case ".csv":
		r := csv.NewReader(bytes.NewReader(content))
		r.FieldsPerRecord = -1 // allow variable columns
		return r.ReadAll()
	case ".xlsx", ".xls":
		f, err := excelize.OpenReader(bytes.NewReader(content))
		if err != nil {
			return nil, err
		}
		defer f.Close()
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return [][]string{}, nil
		}
		rows := [][]string{}
		rs, err := f.Rows(sheets[0])
		if err != nil {
			return nil, err
		}
		for rs.Next() {
			r, err := rs.Columns()
			if err != nil {
				return nil, err
			}
			rows = append(rows, r)
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}
}
