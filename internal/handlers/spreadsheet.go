package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func wantsSpreadsheet(c *gin.Context) bool {
	return c.Query("format") == "xlsx"
}

// sendSpreadsheet renders a workbook into memory before writing headers, so a render failure still yields a JSON error.
func sendSpreadsheet(c *gin.Context, filename string, render func(*bytes.Buffer) error, action string) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		respondError(c, err, action)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
