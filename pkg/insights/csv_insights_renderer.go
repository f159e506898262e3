package insights

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// SnapshotRenderer turns a computed snapshot into an alternative
// representation for export.
type SnapshotRenderer interface {
	RenderSnapshot(snapshot Snapshot) (string, error)
}

type CsvSnapshotRendererImpl struct {
}

func NewCsvSnapshotRenderer() *CsvSnapshotRendererImpl {
	return &CsvSnapshotRendererImpl{}
}

// RenderSnapshot renders the snapshot as CSV: one row per expense category,
// then the income/expense totals and the balance, all per the snapshot's
// frequency.
func (t *CsvSnapshotRendererImpl) RenderSnapshot(snapshot Snapshot) (string, error) {

	data := make([][]string, 0, len(snapshot.Categories)+4)
	data = append(data, []string{"", "Amount / " + snapshot.Frequency.String()})
	for _, categoryTotal := range snapshot.Categories {
		data = append(data, []string{categoryTotal.Category, amountToString(categoryTotal.Total)})
	}
	data = append(data,
		[]string{"Total Expenses", amountToString(snapshot.TotalExpenses)},
		[]string{"Total Income", amountToString(snapshot.TotalIncome)},
		[]string{"Balance", amountToString(snapshot.Balance)},
	)

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

func amountToString(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
