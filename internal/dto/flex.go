package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FlexString holds a form value that clients may send either as a JSON
// string or as a JSON number. Null and absent both leave it empty.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected a string or a number, got %s", data)
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string {
	return string(f)
}

// IsSet reports whether the client sent anything other than blank.
func (f FlexString) IsSet() bool {
	return len(bytes.TrimSpace([]byte(f))) > 0
}
