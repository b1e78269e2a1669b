package store

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Priest98/whatsapp-CRM/models"
)

func TestImportCustomersCSV(t *testing.T) {
	s := New("b1")
	csvData := []byte("name,phone_number,tags,lead_status,notes\n" +
		"Dana White,+1 555-0110,\"vip, referral\",HOT,Wants a demo this week.\n" +
		"Ed Green,+1 555-0111,,not-a-status,\n" +
		"Fay Brown,+1 555-0112,,,\n")

	added, skipped, err := s.ImportCustomers("leads.csv", csvData)
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, skipped)

	customers := s.Customers()
	require.Len(t, customers, 2)
	byName := map[string]models.Customer{}
	for _, c := range customers {
		byName[c.Name] = c
	}
	dana := byName["Dana White"]
	assert.Equal(t, models.LeadHot, dana.LeadStatus)
	assert.Equal(t, []string{"vip", "referral"}, dana.Tags)
	assert.Equal(t, "Wants a demo this week.", dana.Notes)
	assert.Equal(t, "b1", dana.BusinessID)
	// missing status defaults to NEW
	assert.Equal(t, models.LeadNew, byName["Fay Brown"].LeadStatus)
}

func TestImportCustomersXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]string{"name", "phone_number", "tags", "lead_status", "notes"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]string{"Gus Hall", "+1 555-0113", "import", "warm", "From trade show."}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	s := New("b1")
	added, skipped, err := s.ImportCustomers("leads.xlsx", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, 0, skipped)

	customers := s.Customers()
	require.Len(t, customers, 1)
	assert.Equal(t, models.LeadWarm, customers[0].LeadStatus)
}

func TestImportCustomersUnsupportedExtension(t *testing.T) {
	s := New("b1")
	_, _, err := s.ImportCustomers("leads.pdf", []byte("x"))
	assert.Error(t, err)
}
