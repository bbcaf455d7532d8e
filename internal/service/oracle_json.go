package service

import (
	"encoding/json"
	"strconv"
	"strings"
)

// extractJSON strips markdown fences and surrounding prose from an oracle
// reply, keeping the outermost object or array.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		start := 3
		if nl := strings.Index(content[start:], "\n"); nl != -1 {
			start += nl + 1
		}
		if end := strings.Index(content[start:], "```"); end != -1 {
			content = content[start : start+end]
		} else {
			content = content[start:]
		}
	}
	content = strings.TrimSpace(content)

	open := strings.IndexAny(content, "{[")
	if open == -1 {
		return content
	}
	closer := "}"
	if content[open] == '[' {
		closer = "]"
	}
	if end := strings.LastIndex(content, closer); end > open {
		content = content[open : end+1]
	}
	return strings.TrimSpace(content)
}

// flexFloat accepts 85, 85.5 or "85".
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// flexInt accepts 3, 3.0 or "3".
type flexInt int

func (i *flexInt) UnmarshalJSON(b []byte) error {
	var f flexFloat
	if err := f.UnmarshalJSON(b); err != nil {
		return err
	}
	*i = flexInt(f)
	return nil
}

// flexStrings accepts a list of strings or a single string.
type flexStrings []string

func (s *flexStrings) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*s = list
		return nil
	}
	var one string
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	if one == "" {
		*s = nil
	} else {
		*s = []string{one}
	}
	return nil
}

// flexAnswer accepts a string, a number or a list; lists are comma-joined
// the way multi-choice answers are stored.
type flexAnswer string

func (a *flexAnswer) UnmarshalJSON(b []byte) error {
	var list []interface{}
	if err := json.Unmarshal(b, &list); err == nil {
		parts := make([]string, 0, len(list))
		for _, v := range list {
			parts = append(parts, toString(v))
		}
		*a = flexAnswer(strings.Join(parts, ","))
		return nil
	}
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*a = flexAnswer(toString(v))
	return nil
}

func toString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}
