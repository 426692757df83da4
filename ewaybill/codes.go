// Package ewaybill holds the data shapes exchanged with the government
// e-way bill service: the error code table and the consolidated e-way bill
// (trip sheet) request.
package ewaybill

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

//go:embed errors.json
var errorsJSON []byte

var messages = mustLoad(errorsJSON)

func mustLoad(raw []byte) map[int]string {
	var byText map[string]string
	if err := json.Unmarshal(raw, &byText); err != nil {
		panic(fmt.Sprintf("ewaybill: bad error table: %v", err))
	}
	out := make(map[int]string, len(byText))
	for k, v := range byText {
		code, err := strconv.Atoi(k)
		if err != nil {
			panic(fmt.Sprintf("ewaybill: bad error code %q", k))
		}
		out[code] = v
	}
	return out
}

// Message looks up the text for an error code.
func Message(code int) (string, bool) {
	msg, ok := messages[code]
	return msg, ok
}

// Codes lists every known code in ascending order.
func Codes() []int {
	out := make([]int, 0, len(messages))
	for c := range messages {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// Error is one decoded error from an error payload.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ParseErrorCodes decodes the comma separated list the service returns, e.g.
// "312,238,". Blank and non-numeric entries are skipped.
func ParseErrorCodes(list string) []int {
	var codes []int
	for _, part := range strings.Split(list, ",") {
		code, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		codes = append(codes, code)
	}
	return codes
}

// Describe maps an error code list to messages. Unknown codes keep a generic message.
func Describe(list string) []Error {
	codes := ParseErrorCodes(list)
	out := make([]Error, len(codes))
	for i, code := range codes {
		msg, ok := Message(code)
		if !ok {
			msg = "Unknown error code " + strconv.Itoa(code)
		}
		out[i] = Error{Code: code, Message: msg}
	}
	return out
}
