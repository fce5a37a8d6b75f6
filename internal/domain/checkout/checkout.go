package checkout

import "encoding/json"

// Result is the outcome reported by the checkout stored procedure.
type Result struct {
	OK      bool
	Message string
	Total   *float64
}

const defaultMessage = "Compra realizada"

// ParseResult decodes the JSON payload returned by the procedure. The
// payload may omit the ok flag; absence counts as success.
func ParseResult(payload []byte) (*Result, error) {
	var raw struct {
		OK      *bool    `json:"ok"`
		Message string   `json:"message"`
		Total   *float64 `json:"total"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, err
	}
	res := &Result{OK: true, Message: raw.Message, Total: raw.Total}
	if raw.OK != nil {
		res.OK = *raw.OK
	}
	if res.Message == "" {
		res.Message = defaultMessage
	}
	return res, nil
}
