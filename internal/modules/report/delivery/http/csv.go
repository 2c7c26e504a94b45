package handler

import (
	"encoding/csv"
	"net/http"

	"anoa.com/casetrack/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type csvRow interface {
	CSVRecord() []string
}

func records[R csvRow](rows []R) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.CSVRecord())
	}
	return out
}

// writeCSV streams a header row then one line per record.
func writeCSV(c *gin.Context, filename string, header []string, rows [][]string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	err := w.Write(header)
	if err == nil {
		err = w.WriteAll(rows)
	}
	if err != nil {
		logger.From(c).Warn("csv write failed", zap.String("file", filename), zap.Error(err))
	}
}
