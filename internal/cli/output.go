package cli

import (
	"encoding/json"
	"fmt"
	"github.com/davejbax/go-ytime/internal/config"
	"io"
)

// printer writes a command's result either as plain text or as a single JSON object
type printer struct {
	format string
	w      io.Writer
}

func (p *printer) print(text string, data any) error {
	if p.format == config.FormatJSON {
		return json.NewEncoder(p.w).Encode(data)
	}

	_, err := fmt.Fprintln(p.w, text)
	return err
}

type packResult struct {
	DateTime string `json:"datetime"`
	Packed   uint64 `json:"packed"`
}

type deltaResult struct {
	From         string `json:"from"`
	To           string `json:"to"`
	Days         int64  `json:"days"`
	Microseconds int64  `json:"microseconds"`
	Delta        string `json:"delta"`
}

type addResult struct {
	From   string `json:"from"`
	Delta  string `json:"delta"`
	Result string `json:"result"`
	Packed uint64 `json:"packed"`
}

type leapSecondResult struct {
	Date  string `json:"date"`
	Count uint32 `json:"count"`
}

type leapSecondsResult struct {
	LeapSeconds []leapSecondResult `json:"leap_seconds"`
}
