package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexString decodes from either a JSON string or a JSON number. The stats
// API emits identifiers and jersey numbers in both forms.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("flex string: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*f = FlexString(strconv.FormatInt(i, 10))
		return nil
	}
	fl, err := n.Float64()
	if err != nil {
		return fmt.Errorf("flex string: %w", err)
	}
	*f = FlexString(strconv.FormatFloat(fl, 'f', -1, 64))
	return nil
}

func (f FlexString) String() string {
	return string(f)
}
