package rpc

import "encoding/json"

// GroupList decodes the directory server's group collection, which has a
// one-or-many wire encoding: a JSON array of names, a single bare name, or
// null/absent when the principal has no groups. All forms decode to a
// non-nil slice so callers never need to tell them apart.
type GroupList []string

func (g *GroupList) UnmarshalJSON(data []byte) error {
	*g = GroupList{}

	if string(data) == "null" {
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		if many != nil {
			*g = GroupList(many)
		}
		return nil
	}

	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	if one != "" {
		*g = GroupList{one}
	}
	return nil
}
